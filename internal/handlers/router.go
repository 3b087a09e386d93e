package handlers

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"daisy/internal/metrics"
	mw "daisy/internal/middleware"
	"daisy/internal/ratelimit"
	"daisy/internal/store"
)

type RouterConfig struct {
	Store          store.PetalStore
	Logger         *zap.Logger
	AllowedOrigins []string
	// Limiter is optional; nil disables rate limiting.
	Limiter *ratelimit.KeyedRateLimiter
	// TrustProxyHeaders enables chi's RealIP. Leave it off unless a reverse
	// proxy overwrites X-Forwarded-For, or clients can pick their own
	// rate limit key.
	TrustProxyHeaders bool
}

// NewRouter wires middleware and the petal routes.
func NewRouter(cfg RouterConfig) chi.Router {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(mw.ZapRequestLogger(cfg.Logger))
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	petalHandler := NewPetalHandler(cfg.Store, cfg.Logger)
	healthHandler := NewHealthHandler(cfg.Store, cfg.Logger)

	r.Get("/healthz", healthHandler.Check)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		if cfg.Limiter != nil {
			api.Use(mw.RateLimit(cfg.Limiter, cfg.Logger))
		}
		api.Get("/moment", petalHandler.Moment)
		api.Route("/petals", func(pr chi.Router) {
			pr.Get("/", petalHandler.List)
			pr.Post("/", petalHandler.Create)
			pr.Get("/{id}", petalHandler.Get)
			pr.Put("/{id}", petalHandler.Update)
			pr.Delete("/{id}", petalHandler.Delete)
		})
	})

	return r
}
