package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/telehealth-connect/patient-api/internal/model"
	"github.com/telehealth-connect/patient-api/internal/repository"
	apperrors "github.com/telehealth-connect/patient-api/pkg/errors"
)

type healthCenterRepository struct {
	BaseRepository
}

func NewHealthCenterRepository(db *sqlx.DB) repository.HealthCenterRepository {
	return &healthCenterRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *healthCenterRepository) Create(ctx context.Context, center *model.HealthCenter) error {
	query := `
		INSERT INTO health_centers (id, name, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	center.CreatedAt = time.Now()
	center.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, query,
			center.ID,
			center.Name,
			center.Location,
			center.CreatedAt,
			center.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create health center: %w", err)
		}
		return nil
	})
}

func (r *healthCenterRepository) First(ctx context.Context) (*model.HealthCenter, error) {
	query := `SELECT * FROM health_centers ORDER BY created_at ASC LIMIT 1`
	var center model.HealthCenter
	err := r.db.GetContext(ctx, &center, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFound("health center", err)
		}
		return nil, fmt.Errorf("failed to get health center: %w", err)
	}
	return &center, nil
}

func (r *healthCenterRepository) List(ctx context.Context) ([]*model.HealthCenter, error) {
	query := `SELECT * FROM health_centers ORDER BY created_at ASC`
	var centers []*model.HealthCenter
	err := r.db.SelectContext(ctx, &centers, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list health centers: %w", err)
	}
	return centers, nil
}

func (r *healthCenterRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM health_centers`)
	if err != nil {
		return 0, fmt.Errorf("failed to count health centers: %w", err)
	}
	return count, nil
}

// Seed inserts the given centers in one transaction. Callers are expected
// to check Count first so restarts stay idempotent.
func (r *healthCenterRepository) Seed(ctx context.Context, centers []*model.HealthCenter) error {
	query := `
		INSERT INTO health_centers (id, name, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, center := range centers {
			center.CreatedAt = time.Now()
			center.UpdatedAt = time.Now()
			if _, err := tx.ExecContext(ctx, query,
				center.ID,
				center.Name,
				center.Location,
				center.CreatedAt,
				center.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to seed health center %q: %w", center.Name, err)
			}
		}
		return nil
	})
}
