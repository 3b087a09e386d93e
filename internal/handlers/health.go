package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"daisy/internal/store"
)

type HealthHandler struct {
	store  store.PetalStore
	logger *zap.Logger
}

func NewHealthHandler(s store.PetalStore, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: s, logger: logger}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
