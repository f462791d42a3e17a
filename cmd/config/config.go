package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const defaultJWTSecret = "your-super-secret-jwt-key-change-in-production"

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Email       EmailConfig
	Business    BusinessConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Upload      UploadConfig
	Internal    InternalConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64
}

type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret     string
	JWTExpiration time.Duration
}

type EmailConfig struct {
	Enabled   bool
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	// SendTimeout bounds one notification dispatch.
	SendTimeout time.Duration
}

type BusinessConfig struct {
	ContactEmail string
	ContactPhone string
}

type CORSConfig struct {
	FrontendURL string
}

type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

type UploadConfig struct {
	Dir         string
	MaxFileSize int64
}

type InternalConfig struct {
	APIKey string
}

// Load reads configuration from the environment, after loading an optional .env file.
// Defaults are only suitable for local development.
func Load() *Config {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", getEnv("NODE_ENV", "development"))

	cfg := &Config{
		Environment: env,
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
			MaxBodyBytes:    getInt64("MAX_BODY_SIZE", 10<<20),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "vastushakti"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getBool("RABBITMQ_ENABLED", false),
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", defaultJWTSecret),
			JWTExpiration: getDuration("JWT_EXPIRE", 7*24*time.Hour),
		},
		Email: EmailConfig{
			Enabled:     getBool("EMAIL_ENABLED", env == "production"),
			SMTPHost:    getEnv("EMAIL_HOST", "smtp.gmail.com"),
			SMTPPort:    getInt("EMAIL_PORT", 587),
			Username:    getEnv("EMAIL_USER", ""),
			Password:    getEnv("EMAIL_PASS", ""),
			FromName:    getEnv("EMAIL_FROM_NAME", "Vastu Shakti"),
			FromEmail:   getEnv("EMAIL_FROM", getEnv("EMAIL_USER", "")),
			SendTimeout: getDuration("EMAIL_SEND_TIMEOUT", 30*time.Second),
		},
		Business: BusinessConfig{
			ContactEmail: getEnv("CONTACT_EMAIL", "vastu.shakti1@gmail.com"),
			ContactPhone: getEnv("CONTACT_PHONE", "+91 84487 50725"),
		},
		CORS: CORSConfig{
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getInt("RATE_LIMIT_MAX", 100),
			Window:      getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		},
		Upload: UploadConfig{
			Dir:         getEnv("UPLOAD_PATH", "uploads/"),
			MaxFileSize: getInt64("MAX_FILE_SIZE", 5242880),
		},
		Internal: InternalConfig{
			APIKey: getEnv("INTERNAL_API_KEY", ""),
		},
	}

	return cfg
}

// GetDSN returns the MySQL data source name. DATABASE_URL wins when set and may be
// either a native DSN or a mysql:// URL.
func (c *Config) GetDSN() string {
	if c.Database.URL != "" {
		if strings.HasPrefix(c.Database.URL, "mysql://") {
			if dsn, err := dsnFromURL(c.Database.URL); err == nil {
				return dsn
			}
		}
		return c.Database.URL
	}

	mc := mysql.NewConfig()
	mc.User = c.Database.User
	mc.Passwd = c.Database.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", c.Database.Host, c.Database.Port)
	mc.DBName = c.Database.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate rejects settings that must never reach production.
func (c *Config) Validate() error {
	if !c.IsProduction() {
		return nil
	}
	if c.Auth.JWTSecret == "" || c.Auth.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

func dsnFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	mc := mysql.NewConfig()
	mc.User = u.User.Username()
	mc.Passwd, _ = u.User.Password()
	mc.Net = "tcp"
	mc.Addr = u.Host
	mc.DBName = strings.TrimPrefix(u.Path, "/")
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN(), nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v, err := strconv.ParseInt(getEnv(key, ""), 10, 64); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return fallback
}

// getDuration accepts Go durations ("15m") and day suffixes ("7d").
func getDuration(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	if d, err := ParseDuration(v); err == nil {
		return d
	}
	return fallback
}

func ParseDuration(v string) (time.Duration, error) {
	if strings.HasSuffix(v, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(v, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day duration %q", v)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	return time.ParseDuration(v)
}
