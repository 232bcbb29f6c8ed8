package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/telehealth-connect/patient-api/internal/model"
	"github.com/telehealth-connect/patient-api/internal/repository"
	apperrors "github.com/telehealth-connect/patient-api/pkg/errors"
)

type AppointmentService interface {
	Book(ctx context.Context, patientID uuid.UUID, req *model.BookAppointmentRequest) (*model.Appointment, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
}

// CenterResolver picks the health center a booking is bound to.
type CenterResolver interface {
	FirstOrDefault(ctx context.Context) (*model.HealthCenter, error)
}

// Notifier sends the booking confirmation. Failures never fail a booking.
type Notifier interface {
	BookingConfirmation(patient *model.Patient, appointment *model.Appointment, center *model.HealthCenter) error
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
	centers     CenterResolver
	notifier    Notifier
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository, centers CenterResolver, notifier Notifier) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
		centers:     centers,
		notifier:    notifier,
	}
}

// Book creates an appointment for the patient, bound to the first existing
// health center or a lazily created default clinic. Overlapping bookings
// are permitted.
func (s *Service) Book(ctx context.Context, patientID uuid.UUID, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	dateTime, err := time.Parse(model.DateTimeLayout, req.DateTime)
	if err != nil {
		return nil, apperrors.NewBadRequest("invalid date_time, expected format YYYY-MM-DDTHH:MM", err)
	}

	patient, err := s.patientRepo.Get(ctx, patientID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("user not found, please log in again", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	center, err := s.centers.FirstOrDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve health center: %w", err)
	}

	appointment := &model.Appointment{
		Base: model.Base{
			ID: uuid.New(),
		},
		PatientID:      patient.ID,
		DateTime:       dateTime,
		Location:       req.Location,
		HealthCenterID: &center.ID,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.BookingConfirmation(patient, appointment, center); err != nil {
			log.Warn().Err(err).Str("patient_id", patient.ID.String()).Msg("failed to send booking confirmation")
		}
	}

	return appointment, nil
}

// ListForPatient returns the patient's appointments ascending by date-time.
func (s *Service) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	if _, err := s.patientRepo.Get(ctx, patientID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.Unauthorized("user not found, please log in again", err)
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return s.repo.ListForPatient(ctx, patientID)
}
