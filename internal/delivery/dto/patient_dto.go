package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterPatientRequest struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	NationalID string `json:"national_id"`
}

// Response DTOs

type PatientResponse struct {
	ID         uuid.UUID `json:"id"`
	Seq        int64     `json:"seq"`
	Name       string    `json:"name"`
	BirthDate  string    `json:"birth_date"`
	NationalID string    `json:"national_id"`
	Display    string    `json:"display"`
	CreatedAt  time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
