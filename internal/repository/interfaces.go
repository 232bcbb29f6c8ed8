package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/telehealth-connect/patient-api/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id uuid.UUID) (*model.Patient, error)
	GetByEmail(ctx context.Context, email string) (*model.Patient, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
}

type HealthCenterRepository interface {
	Create(ctx context.Context, center *model.HealthCenter) error
	First(ctx context.Context) (*model.HealthCenter, error)
	List(ctx context.Context) ([]*model.HealthCenter, error)
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context, centers []*model.HealthCenter) error
}

// SessionRepository tracks live session tokens so logout can revoke them.
type SessionRepository interface {
	Store(ctx context.Context, tokenID string, patientID uuid.UUID, expiresAt time.Time) error
	Exists(ctx context.Context, tokenID string) (bool, error)
	Delete(ctx context.Context, tokenID string) error
}
