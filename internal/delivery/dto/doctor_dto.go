package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// RegisterDoctorRequest fields are passed to the registry as typed; empty values are allowed.
type RegisterDoctorRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	LicenseID string `json:"license_id"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Seq       int64     `json:"seq"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	LicenseID string    `json:"license_id"`
	Display   string    `json:"display"`
	CreatedAt time.Time `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
