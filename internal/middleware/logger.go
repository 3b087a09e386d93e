package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapRequestLogger is a middleware that logs requests using zap.
func ZapRequestLogger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote_ip", r.RemoteAddr),
				}
				if reqID := middleware.GetReqID(r.Context()); reqID != "" {
					fields = append(fields, zap.String("request_id", reqID))
				}

				level := zapcore.InfoLevel
				switch {
				case status >= 500:
					level = zapcore.ErrorLevel
				case status >= 400:
					level = zapcore.WarnLevel
				}

				// Development loggers print a readable one-liner.
				msg := "request completed"
				if logger.Core().Enabled(zapcore.DebugLevel) {
					msg = fmt.Sprintf("%s %s %d %s", r.Method, r.URL.Path, status, time.Since(start))
				}
				if ce := logger.Check(level, msg); ce != nil {
					ce.Write(fields...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
