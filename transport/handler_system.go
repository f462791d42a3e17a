package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

type RootResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Uptime      float64   `json:"uptime"`
	Environment string    `json:"environment"`
	Database    string    `json:"database"`
	Redis       string    `json:"redis,omitempty"`
}

// Root handler
// @Summary API index
// @Tags System
// @Produce json
// @Success 200 {object} transport.RootResponse
// @Router / [get]
func (s *RestHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, RootResponse{
		Message: "Vastu Shakti API Server",
		Version: apiVersion,
		Endpoints: map[string]string{
			"health":        "/health",
			"auth":          "/api/auth",
			"users":         "/api/users",
			"consultations": "/api/consultations",
			"blogs":         "/api/blogs",
			"chat":          "/api/chat",
			"contact":       "/api/contact",
			"admin":         "/api/admin",
			"docs":          "/swagger/index.html",
		},
	})
}

// Health handler
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} transport.HealthResponse
// @Failure 503 {object} transport.HealthResponse
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	res := HealthResponse{
		Status:      "OK",
		Timestamp:   time.Now().UTC(),
		Uptime:      time.Since(s.startedAt).Seconds(),
		Environment: s.cfg.Environment,
		Database:    "up",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	// rate limiting fails open, so redis being down never degrades the service
	if s.redisCheck != nil {
		res.Redis = "up"
		if err := s.redisCheck(ctx); err != nil {
			logger.Warn("[Health] redis unreachable", zap.String("error", err.Error()))
			res.Redis = "down"
		}
	}

	if s.dbCheck != nil {
		if err := s.dbCheck(ctx); err != nil {
			logger.Warn("[Health] database unreachable", zap.String("error", err.Error()))
			res.Status = "DEGRADED"
			res.Database = "down"
			writeJSON(w, http.StatusServiceUnavailable, res)
			return
		}
	}

	writeSuccess(w, res)
}
