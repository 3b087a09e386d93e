package handlers

import (
	"time"

	"daisy/internal/models"
)

// PetalDTO is the wire shape of a petal, with createdAt as an RFC 3339 string.
type PetalDTO struct {
	ID             string `json:"id"`
	DayOfWeek      string `json:"dayOfWeek"`
	TimeOfDay      string `json:"timeOfDay"`
	CurrentEmotion string `json:"currentEmotion"`
	DesiredEmotion string `json:"desiredEmotion"`
	Text           string `json:"text"`
	CreatedAt      string `json:"createdAt"`
}

func ToPetalDTO(p models.Petal) PetalDTO {
	return PetalDTO{
		ID:             p.ID,
		DayOfWeek:      p.DayOfWeek,
		TimeOfDay:      p.TimeOfDay,
		CurrentEmotion: p.CurrentEmotion,
		DesiredEmotion: p.DesiredEmotion,
		Text:           p.Text,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toPetalDTOs(petals []models.Petal) []PetalDTO {
	out := make([]PetalDTO, 0, len(petals))
	for _, p := range petals {
		out = append(out, ToPetalDTO(p))
	}
	return out
}

type createPetalRequest struct {
	DayOfWeek      string `json:"dayOfWeek" validate:"required"`
	TimeOfDay      string `json:"timeOfDay" validate:"required"`
	CurrentEmotion string `json:"currentEmotion" validate:"required"`
	DesiredEmotion string `json:"desiredEmotion" validate:"required"`
	Text           string `json:"text" validate:"required"`
}

// updatePetalRequest only carries text; other fields in the body are ignored.
type updatePetalRequest struct {
	Text string `json:"text" validate:"required"`
}

type deletePetalResponse struct {
	Message      string   `json:"message"`
	DeletedPetal PetalDTO `json:"deletedPetal"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
