package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"daisy/internal/models"
	"daisy/internal/services"
)

const petalColumns = `id, text, day_of_week, time_of_day, current_emotion, desired_emotion, created_at`

// SQLStore keeps petals in the petals table of a Postgres or SQLite database.
type SQLStore struct {
	db     *sqlx.DB
	encSvc *services.EncryptionService
	now    func() time.Time
}

// NewSQLStore wraps an open connection. encSvc may be nil to store text in
// the clear.
func NewSQLStore(db *sqlx.DB, encSvc *services.EncryptionService) *SQLStore {
	return &SQLStore{db: db, encSvc: encSvc, now: time.Now}
}

func (s *SQLStore) ListAll(ctx context.Context) ([]models.Petal, error) {
	petals := []models.Petal{}
	query := `SELECT ` + petalColumns + ` FROM petals ORDER BY seq`
	if err := s.db.SelectContext(ctx, &petals, query); err != nil {
		return nil, fmt.Errorf("list petals: %w", err)
	}
	for i := range petals {
		if err := s.encSvc.DecryptPetal(&petals[i]); err != nil {
			return nil, fmt.Errorf("decrypt petal %s: %w", petals[i].ID, err)
		}
	}
	return petals, nil
}

func (s *SQLStore) Create(ctx context.Context, in models.NewPetal) (models.Petal, error) {
	p := models.Petal{
		ID:             uuid.NewString(),
		Text:           in.Text,
		DayOfWeek:      in.DayOfWeek,
		TimeOfDay:      in.TimeOfDay,
		CurrentEmotion: in.CurrentEmotion,
		DesiredEmotion: in.DesiredEmotion,
		// Postgres keeps microseconds; truncate so the returned value matches later reads.
		CreatedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	row := p
	if err := s.encSvc.EncryptPetal(&row); err != nil {
		return models.Petal{}, fmt.Errorf("encrypt petal: %w", err)
	}

	_, err := s.db.NamedExecContext(ctx, `INSERT INTO petals (`+petalColumns+`)
		VALUES (:id, :text, :day_of_week, :time_of_day, :current_emotion, :desired_emotion, :created_at)`, row)
	if err != nil {
		return models.Petal{}, fmt.Errorf("create petal: %w", err)
	}
	return p, nil
}

func (s *SQLStore) GetByID(ctx context.Context, id string) (models.Petal, error) {
	var p models.Petal
	query := s.db.Rebind(`SELECT ` + petalColumns + ` FROM petals WHERE id = ?`)
	if err := s.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Petal{}, ErrNotFound
		}
		return models.Petal{}, fmt.Errorf("get petal %s: %w", id, err)
	}
	if err := s.decrypt(&p); err != nil {
		return models.Petal{}, err
	}
	return p, nil
}

func (s *SQLStore) UpdateText(ctx context.Context, id, text string) (models.Petal, error) {
	sealed, err := s.encSvc.EncryptText(text)
	if err != nil {
		return models.Petal{}, fmt.Errorf("encrypt text: %w", err)
	}

	var p models.Petal
	query := s.db.Rebind(`UPDATE petals SET text = ? WHERE id = ? RETURNING ` + petalColumns)
	if err := s.db.GetContext(ctx, &p, query, sealed, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Petal{}, ErrNotFound
		}
		return models.Petal{}, fmt.Errorf("update petal %s: %w", id, err)
	}
	if err := s.decrypt(&p); err != nil {
		return models.Petal{}, err
	}
	return p, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) (models.Petal, error) {
	var p models.Petal
	query := s.db.Rebind(`DELETE FROM petals WHERE id = ? RETURNING ` + petalColumns)
	if err := s.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Petal{}, ErrNotFound
		}
		return models.Petal{}, fmt.Errorf("delete petal %s: %w", id, err)
	}
	if err := s.decrypt(&p); err != nil {
		return models.Petal{}, err
	}
	return p, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) decrypt(p *models.Petal) error {
	if err := s.encSvc.DecryptPetal(p); err != nil {
		return fmt.Errorf("decrypt petal %s: %w", p.ID, err)
	}
	return nil
}
