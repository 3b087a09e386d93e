package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"daisy/internal/metrics"
	"daisy/internal/models"
	"daisy/internal/store"
)

type PetalHandler struct {
	store    store.PetalStore
	logger   *zap.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewPetalHandler(s store.PetalStore, logger *zap.Logger) *PetalHandler {
	return &PetalHandler{
		store:    s,
		logger:   logger,
		validate: newValidator(),
		now:      time.Now,
	}
}

// List godoc
// @Summary List petals
// @Description Returns every petal in creation order
// @Tags petals
// @Produce json
// @Success 200 {array} PetalDTO
// @Failure 500 {object} errorResponse
// @Router /petals [get]
func (h *PetalHandler) List(w http.ResponseWriter, r *http.Request) {
	petals, err := h.store.ListAll(r.Context())
	if err != nil {
		h.logger.Error("list petals", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to retrieve petals")
		return
	}
	writeJSON(w, http.StatusOK, toPetalDTOs(petals))
}

// Create godoc
// @Summary Create a petal
// @Tags petals
// @Accept json
// @Produce json
// @Param petal body createPetalRequest true "Petal"
// @Success 201 {object} PetalDTO
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /petals [post]
func (h *PetalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPetalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validationFailure(err))
		return
	}

	p, err := h.store.Create(r.Context(), models.NewPetal{
		DayOfWeek:      req.DayOfWeek,
		TimeOfDay:      req.TimeOfDay,
		CurrentEmotion: req.CurrentEmotion,
		DesiredEmotion: req.DesiredEmotion,
		Text:           req.Text,
	})
	metrics.RecordPetalWrite("create", writeResult(err))
	if err != nil {
		h.logger.Error("create petal", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create petal")
		return
	}
	writeJSON(w, http.StatusCreated, ToPetalDTO(p))
}

// Get godoc
// @Summary Get a petal
// @Tags petals
// @Produce json
// @Param id path string true "Petal ID"
// @Success 200 {object} PetalDTO
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /petals/{id} [get]
func (h *PetalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "petal not found")
			return
		}
		h.logger.Error("get petal", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to retrieve petal")
		return
	}
	writeJSON(w, http.StatusOK, ToPetalDTO(p))
}

// Update godoc
// @Summary Update a petal's text
// @Description Only text can change; day, time and emotions are fixed at creation
// @Tags petals
// @Accept json
// @Produce json
// @Param id path string true "Petal ID"
// @Param petal body updatePetalRequest true "New text"
// @Success 200 {object} PetalDTO
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /petals/{id} [put]
func (h *PetalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req updatePetalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, validationFailure(err))
		return
	}

	p, err := h.store.UpdateText(r.Context(), id, req.Text)
	metrics.RecordPetalWrite("update", writeResult(err))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "petal not found")
			return
		}
		h.logger.Error("update petal", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to update petal")
		return
	}
	writeJSON(w, http.StatusOK, ToPetalDTO(p))
}

// Delete godoc
// @Summary Delete a petal
// @Tags petals
// @Produce json
// @Param id path string true "Petal ID"
// @Success 200 {object} deletePetalResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /petals/{id} [delete]
func (h *PetalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.store.Delete(r.Context(), id)
	metrics.RecordPetalWrite("delete", writeResult(err))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "petal not found")
			return
		}
		h.logger.Error("delete petal", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "error deleting petal")
		return
	}
	writeJSON(w, http.StatusOK, deletePetalResponse{
		Message:      "Petal deleted successfully",
		DeletedPetal: ToPetalDTO(p),
	})
}

// writeResult labels a store write for the petal write counter.
func writeResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, store.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}

// Moment returns the server's current day of week and time of day so clients
// can tag a new petal consistently.
func (h *PetalHandler) Moment(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.MomentOf(h.now()))
}
