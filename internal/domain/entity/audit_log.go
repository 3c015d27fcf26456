package entity

import (
	"time"
)

// AuditLog represents a registry audit trail entry
type AuditLog struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	Metadata  JSON      `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// JSON is free-form audit metadata
type JSON map[string]interface{}

// Common audit actions
const (
	AuditActionDoctorCreate      = "doctor.create"
	AuditActionPatientCreate     = "patient.create"
	AuditActionAppointmentCreate = "appointment.create"
)
