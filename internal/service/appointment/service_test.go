package appointment

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telehealth-connect/patient-api/internal/model"
	apperrors "github.com/telehealth-connect/patient-api/pkg/errors"
)

type fakeAppointmentRepo struct {
	appointments []*model.Appointment
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	r.appointments = append(r.appointments, appointment)
	return nil
}

func (r *fakeAppointmentRepo) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	var result []*model.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].DateTime.Before(result[j].DateTime)
	})
	return result, nil
}

type fakePatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *model.Patient) error {
	r.patients[patient.ID] = patient
	return nil
}

func (r *fakePatientRepo) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	if p, ok := r.patients[id]; ok {
		return p, nil
	}
	return nil, apperrors.NewNotFound("patient", nil)
}

func (r *fakePatientRepo) GetByEmail(ctx context.Context, email string) (*model.Patient, error) {
	for _, p := range r.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, apperrors.NewNotFound("patient", nil)
}

type fakeCenterResolver struct {
	center *model.HealthCenter
}

func (r *fakeCenterResolver) FirstOrDefault(ctx context.Context) (*model.HealthCenter, error) {
	return r.center, nil
}

type recordingNotifier struct {
	sent int
}

func (n *recordingNotifier) BookingConfirmation(patient *model.Patient, appointment *model.Appointment, center *model.HealthCenter) error {
	n.sent++
	return nil
}

func newTestFixture() (*Service, *fakeAppointmentRepo, *fakePatientRepo, *fakeCenterResolver, *recordingNotifier) {
	appointments := &fakeAppointmentRepo{}
	patients := &fakePatientRepo{patients: make(map[uuid.UUID]*model.Patient)}
	resolver := &fakeCenterResolver{
		center: &model.HealthCenter{
			Base:     model.Base{ID: uuid.New()},
			Name:     "City Hospital",
			Location: "456 Main St, Lagos",
		},
	}
	notifier := &recordingNotifier{}
	svc := NewService(appointments, patients, resolver, notifier)
	return svc, appointments, patients, resolver, notifier
}

func storedPatient(patients *fakePatientRepo) *model.Patient {
	patient := &model.Patient{
		Base:  model.Base{ID: uuid.New()},
		Name:  "Ada Obi",
		Email: "ada@example.com",
	}
	patients.patients[patient.ID] = patient
	return patient
}

func TestBookCreatesAppointment(t *testing.T) {
	svc, appointments, patients, resolver, notifier := newTestFixture()
	patient := storedPatient(patients)

	booked, err := svc.Book(context.Background(), patient.ID, &model.BookAppointmentRequest{
		DateTime: "2025-06-01T10:00",
		Location: "Clinic A",
	})
	require.NoError(t, err)

	require.Len(t, appointments.appointments, 1)
	assert.Equal(t, patient.ID, booked.PatientID)
	assert.Equal(t, "Clinic A", booked.Location)
	require.NotNil(t, booked.HealthCenterID)
	assert.Equal(t, resolver.center.ID, *booked.HealthCenterID)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), booked.DateTime)
	assert.Equal(t, 1, notifier.sent)
}

func TestBookRejectsMalformedDateTime(t *testing.T) {
	svc, appointments, patients, _, _ := newTestFixture()
	patient := storedPatient(patients)

	_, err := svc.Book(context.Background(), patient.ID, &model.BookAppointmentRequest{
		DateTime: "01/06/2025 10:00",
		Location: "Clinic A",
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, appointments.appointments)
}

func TestBookUnknownPatientRedirectsToLogin(t *testing.T) {
	svc, appointments, _, _, _ := newTestFixture()

	_, err := svc.Book(context.Background(), uuid.New(), &model.BookAppointmentRequest{
		DateTime: "2025-06-01T10:00",
		Location: "Clinic A",
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	assert.Empty(t, appointments.appointments)
}

func TestBookPermitsOverlappingAppointments(t *testing.T) {
	svc, appointments, patients, _, _ := newTestFixture()
	patient := storedPatient(patients)

	req := &model.BookAppointmentRequest{DateTime: "2025-06-01T10:00", Location: "Clinic A"}
	_, err := svc.Book(context.Background(), patient.ID, req)
	require.NoError(t, err)
	_, err = svc.Book(context.Background(), patient.ID, req)
	require.NoError(t, err)

	assert.Len(t, appointments.appointments, 2)
}

func TestListForPatientSortsAscending(t *testing.T) {
	svc, _, patients, _, _ := newTestFixture()
	patient := storedPatient(patients)
	other := storedPatient(patients)

	for _, dt := range []string{"2025-06-03T09:00", "2025-06-01T10:00", "2025-06-02T08:30"} {
		_, err := svc.Book(context.Background(), patient.ID, &model.BookAppointmentRequest{
			DateTime: dt,
			Location: "Clinic A",
		})
		require.NoError(t, err)
	}
	_, err := svc.Book(context.Background(), other.ID, &model.BookAppointmentRequest{
		DateTime: "2025-06-01T09:00",
		Location: "Clinic B",
	})
	require.NoError(t, err)

	listed, err := svc.ListForPatient(context.Background(), patient.ID)
	require.NoError(t, err)

	require.Len(t, listed, 3)
	for _, a := range listed {
		assert.Equal(t, patient.ID, a.PatientID)
	}
	assert.True(t, listed[0].DateTime.Before(listed[1].DateTime))
	assert.True(t, listed[1].DateTime.Before(listed[2].DateTime))
}

func TestListForUnknownPatientFails(t *testing.T) {
	svc, _, _, _, _ := newTestFixture()

	_, err := svc.ListForPatient(context.Background(), uuid.New())
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
}
