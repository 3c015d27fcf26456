package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// ScheduleAppointmentRequest references a doctor and a patient picked from the
// registry's lists. AppointmentDate accepts RFC3339 or "2006-01-02 15:04".
type ScheduleAppointmentRequest struct {
	DoctorID        string `json:"doctor_id" validate:"required,uuid"`
	PatientID       string `json:"patient_id" validate:"required,uuid"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
}

type SearchAppointmentsRequest struct {
	Term string `json:"term"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID       `json:"id"`
	Seq             int64           `json:"seq"`
	Doctor          DoctorResponse  `json:"doctor"`
	Patient         PatientResponse `json:"patient"`
	AppointmentDate time.Time       `json:"appointment_date"`
	ShortDate       string          `json:"short_date"`
	Display         string          `json:"display"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
