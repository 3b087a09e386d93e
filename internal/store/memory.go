package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"daisy/internal/models"
)

// MemoryStore is an in-process PetalStore for running without a database.
// Contents are lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	petals map[string]models.Petal
	order  []string
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{petals: make(map[string]models.Petal), now: time.Now}
}

func (s *MemoryStore) ListAll(_ context.Context) ([]models.Petal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Petal, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.petals[id])
	}
	return out, nil
}

func (s *MemoryStore) Create(_ context.Context, in models.NewPetal) (models.Petal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Petal{
		ID:             uuid.NewString(),
		Text:           in.Text,
		DayOfWeek:      in.DayOfWeek,
		TimeOfDay:      in.TimeOfDay,
		CurrentEmotion: in.CurrentEmotion,
		DesiredEmotion: in.DesiredEmotion,
		CreatedAt:      s.now().UTC(),
	}
	s.petals[p.ID] = p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (models.Petal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.petals[id]
	if !ok {
		return models.Petal{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryStore) UpdateText(_ context.Context, id, text string) (models.Petal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.petals[id]
	if !ok {
		return models.Petal{}, ErrNotFound
	}
	p.Text = text
	s.petals[id] = p
	return p, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (models.Petal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.petals[id]
	if !ok {
		return models.Petal{}, ErrNotFound
	}
	delete(s.petals, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return p, nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }
