package transport

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/vastu-shakti/constant"
	redisrepo "github.com/muhammadheryan/vastu-shakti/repository/redis"
	"github.com/muhammadheryan/vastu-shakti/utils/errors"
	"github.com/muhammadheryan/vastu-shakti/utils/logger"
	"github.com/muhammadheryan/vastu-shakti/utils/metrics"
	"go.uber.org/zap"
)

// RateLimitMiddleware applies a fixed-window limit per client address to paths under
// prefix. Redis failures let the request through.
func RateLimitMiddleware(counter redisrepo.Repository, prefix string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if counter == nil || limit <= 0 || !strings.HasPrefix(r.URL.Path, prefix) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			key := "ratelimit:" + clientIP(r)
			count, ttl, err := counter.IncrWithExpire(r.Context(), key, window)
			if err != nil {
				logger.Warn("[RateLimitMiddleware] counter unavailable, allowing request", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if int(count) > limit {
				metrics.RecordRateLimited()
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Round(time.Second)/time.Second)))
				writeError(w, errors.SetCustomError(constant.ErrRateLimited))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the connection peer address. Forwarded headers are not trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
