package model

import (
	"time"

	"github.com/google/uuid"
)

// DateTimeLayout is the wire format for appointment timestamps.
const DateTimeLayout = "2006-01-02T15:04"

// Appointment links a patient, a date-time, a free-text location and
// optionally a health center.
type Appointment struct {
	Base
	PatientID      uuid.UUID  `db:"patient_id" json:"patient_id"`
	DateTime       time.Time  `db:"date_time" json:"date_time"`
	Location       string     `db:"location" json:"location"`
	HealthCenterID *uuid.UUID `db:"health_center_id" json:"health_center_id,omitempty"`
}

type BookAppointmentRequest struct {
	DateTime string `json:"date_time" binding:"required"`
	Location string `json:"location" binding:"required"`
}
