// Package store persists petals. Handlers depend on the PetalStore interface so
// the SQL and in-memory implementations can be swapped at startup.
package store

import (
	"context"
	"errors"

	"daisy/internal/models"
)

// ErrNotFound is returned when no petal matches the requested id.
var ErrNotFound = errors.New("petal not found")

// PetalStore abstracts the persistence layer for petals.
type PetalStore interface {
	// ListAll returns every petal in creation order.
	ListAll(ctx context.Context) ([]models.Petal, error)
	// Create persists a new petal and returns it with its generated id.
	Create(ctx context.Context, in models.NewPetal) (models.Petal, error)
	GetByID(ctx context.Context, id string) (models.Petal, error)
	// UpdateText changes only the text of a petal.
	UpdateText(ctx context.Context, id, text string) (models.Petal, error)
	// Delete removes a petal and returns what was removed.
	Delete(ctx context.Context, id string) (models.Petal, error)
	Ping(ctx context.Context) error
}
