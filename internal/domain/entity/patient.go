package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BirthDateLayout is the calendar date format accepted and rendered for birth dates.
const BirthDateLayout = "2006-01-02"

// Patient is a registered patient. Patients are never updated after creation.
type Patient struct {
	ID         uuid.UUID `json:"id"`
	Seq        int64     `json:"seq"`
	Name       string    `json:"name"`
	BirthDate  time.Time `json:"birth_date"`
	NationalID string    `json:"national_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *Patient) String() string {
	return fmt.Sprintf("%s - ID: %s", p.Name, p.NationalID)
}
