package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ShortDateLayout renders dates the way the clinic front desk reads them (dd/mm/yyyy).
// Search matches terms against this rendering, not against the date value.
const ShortDateLayout = "02/01/2006"

// Appointment links a doctor and a patient at a given date-time.
// Doctor and Patient are non-owning references into the registry.
type Appointment struct {
	ID              uuid.UUID `json:"id"`
	Seq             int64     `json:"seq"`
	Doctor          *Doctor   `json:"doctor"`
	Patient         *Patient  `json:"patient"`
	AppointmentDate time.Time `json:"appointment_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// ShortDate returns the appointment date in ShortDateLayout.
func (a *Appointment) ShortDate() string {
	return a.AppointmentDate.Format(ShortDateLayout)
}

func (a *Appointment) String() string {
	return fmt.Sprintf("%s - Doctor: %s, Patient: %s", a.ShortDate(), a.Doctor.Name, a.Patient.Name)
}

// Matches reports whether term occurs in the doctor name or patient name
// (case-insensitive) or in the short-date rendering.
func (a *Appointment) Matches(term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(a.Doctor.Name), lower) ||
		strings.Contains(strings.ToLower(a.Patient.Name), lower) ||
		strings.Contains(a.ShortDate(), term)
}
