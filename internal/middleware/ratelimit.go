package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"

	"daisy/internal/ratelimit"
)

// RateLimit rejects requests with 429 once a client IP exhausts its bucket.
// The key is the connection's remote address, which chi's RealIP rewrites when
// proxy headers are trusted.
func RateLimit(limiter *ratelimit.KeyedRateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if !limiter.Allow(key) {
				logger.Warn("rate limit exceeded", zap.String("ip", key), zap.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
