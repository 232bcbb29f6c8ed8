package notification

import (
	"fmt"

	"github.com/telehealth-connect/patient-api/internal/email"
	"github.com/telehealth-connect/patient-api/internal/model"
)

// Service sends patient-facing notifications over email.
type Service struct {
	emailSvc email.Service
}

func NewService(emailSvc email.Service) *Service {
	return &Service{emailSvc: emailSvc}
}

func (s *Service) BookingConfirmation(patient *model.Patient, appointment *model.Appointment, center *model.HealthCenter) error {
	subject := "Appointment confirmation"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour appointment on %s at %s (%s) is confirmed.\n",
		patient.Name,
		appointment.DateTime.Format(model.DateTimeLayout),
		appointment.Location,
		center.Name,
	)
	return s.emailSvc.Send(patient.Email, subject, body)
}
