package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Doctor is a registered physician. Doctors are never updated after creation.
type Doctor struct {
	ID        uuid.UUID `json:"id"`
	Seq       int64     `json:"seq"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	LicenseID string    `json:"license_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (d *Doctor) String() string {
	return fmt.Sprintf("%s (%s) - License: %s", d.Name, d.Specialty, d.LicenseID)
}
