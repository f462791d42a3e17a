package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "15m", want: 15 * time.Minute},
		{in: "1h30m", want: 90 * time.Minute},
		{in: "xd", wantErr: true},
		{in: "soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseDuration(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRE", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("RATE_LIMIT_WINDOW", "")

	cfg := Load()
	if cfg.Server.Port != "5000" {
		t.Fatalf("Port = %s, want 5000", cfg.Server.Port)
	}
	if cfg.Auth.JWTExpiration != 7*24*time.Hour {
		t.Fatalf("JWTExpiration = %v, want 7d", cfg.Auth.JWTExpiration)
	}
	if cfg.RateLimit.MaxRequests != 100 || cfg.RateLimit.Window != 15*time.Minute {
		t.Fatalf("RateLimit = %+v", cfg.RateLimit)
	}
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: 3307, User: "app", Password: "pw", Name: "vastu"}}
	dsn := cfg.GetDSN()
	if !strings.HasPrefix(dsn, "app:pw@tcp(db:3307)/vastu?") || !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("GetDSN() = %s", dsn)
	}

	cfg.Database.URL = "mysql://u:p@host:3306/name"
	dsn = cfg.GetDSN()
	if !strings.HasPrefix(dsn, "u:p@tcp(host:3306)/name?") {
		t.Fatalf("GetDSN() from URL = %s", dsn)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr bool
	}{
		{name: "development default secret", env: "development", secret: defaultJWTSecret},
		{name: "production default secret", env: "production", secret: defaultJWTSecret, wantErr: true},
		{name: "production empty secret", env: "production", secret: "", wantErr: true},
		{name: "production custom secret", env: "production", secret: "a-long-random-secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Environment: tt.env, Auth: AuthConfig{JWTSecret: tt.secret}}
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_ProductionWithoutSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if err := Load().Validate(); err == nil {
		t.Fatal("expected production config with default secret to be rejected")
	}
}
