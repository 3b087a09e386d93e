package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"daisy/internal/config"
	"daisy/internal/db"
	"daisy/internal/handlers"
	"daisy/internal/logger"
	"daisy/internal/ratelimit"
	"daisy/internal/services"
	"daisy/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()

	petals, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to open petal store", zap.Error(err))
	}
	defer closeStore()

	var limiter *ratelimit.KeyedRateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute)
		defer limiter.Stop()
	}

	r := handlers.NewRouter(handlers.RouterConfig{
		Store:             petals,
		Logger:            log,
		AllowedOrigins:    cfg.AllowedOrigins,
		Limiter:           limiter,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

// openStore picks the SQL store when DATABASE_URL is set and falls back to
// the in-memory store otherwise.
func openStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.PetalStore, func(), error) {
	if cfg.DatabaseURL == "" {
		log.Warn("DATABASE_URL not set; petals are kept in memory and lost on restart")
		return store.NewMemoryStore(), func() {}, nil
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, dialect, err := db.Open(openCtx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.RunMigrations(openCtx, conn, dialect); err != nil {
		conn.Close()
		return nil, nil, err
	}

	var encSvc *services.EncryptionService
	if cfg.EncryptionKey != nil {
		encSvc, err = services.NewEncryptionService(cfg.EncryptionKey)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		log.Info("petal encryption at rest enabled")
	}

	log.Info("database ready", zap.String("dialect", string(dialect)))
	return store.NewSQLStore(conn, encSvc), func() { conn.Close() }, nil
}
