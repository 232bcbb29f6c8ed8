package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telehealth-connect/patient-api/internal/model"
)

type recordingEmail struct {
	to      string
	subject string
	body    string
}

func (r *recordingEmail) Send(to, subject, body string) error {
	r.to = to
	r.subject = subject
	r.body = body
	return nil
}

func TestBookingConfirmation(t *testing.T) {
	mail := &recordingEmail{}
	svc := NewService(mail)

	centerID := uuid.New()
	err := svc.BookingConfirmation(
		&model.Patient{Base: model.Base{ID: uuid.New()}, Name: "Ada Obi", Email: "ada@example.com"},
		&model.Appointment{
			Base:           model.Base{ID: uuid.New()},
			DateTime:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			Location:       "Clinic A",
			HealthCenterID: &centerID,
		},
		&model.HealthCenter{Base: model.Base{ID: centerID}, Name: "City Hospital", Location: "456 Main St, Lagos"},
	)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", mail.to)
	assert.Equal(t, "Appointment confirmation", mail.subject)
	assert.Contains(t, mail.body, "Ada Obi")
	assert.Contains(t, mail.body, "2025-06-01T10:00")
	assert.Contains(t, mail.body, "City Hospital")
}
