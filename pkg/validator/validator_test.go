package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	DoctorID  string `json:"doctor_id" validate:"required,uuid"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Note      string `json:"note"`
}

func TestCustomValidator_FormatValidationErrors(t *testing.T) {
	v := NewValidator()

	t.Run("valid request passes", func(t *testing.T) {
		err := v.Validate(&sampleRequest{
			DoctorID:  "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			BirthDate: "1990-05-01",
		})
		require.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&sampleRequest{DoctorID: "not-a-uuid", BirthDate: "01/05/1990"})
		require.Error(t, err)

		errs := v.FormatValidationErrors(err)
		assert.Equal(t, "doctor_id must be a valid UUID", errs["doctor_id"])
		assert.Equal(t, "birth_date must match the format 2006-01-02", errs["birth_date"])
		assert.NotContains(t, errs, "note")
	})

	t.Run("missing fields are required", func(t *testing.T) {
		errs := v.FormatValidationErrors(v.Validate(&sampleRequest{}))
		assert.Equal(t, "doctor_id is required", errs["doctor_id"])
		assert.Equal(t, "birth_date is required", errs["birth_date"])
	})
}
