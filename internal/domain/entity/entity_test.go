package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayStrings(t *testing.T) {
	doctor := &Doctor{Name: "Ana Silva", Specialty: "Cardiology", LicenseID: "12345"}
	patient := &Patient{Name: "João Souza", NationalID: "111.222.333-44"}
	appointment := &Appointment{
		Doctor:          doctor,
		Patient:         patient,
		AppointmentDate: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "Ana Silva (Cardiology) - License: 12345", doctor.String())
	assert.Equal(t, "João Souza - ID: 111.222.333-44", patient.String())
	assert.Equal(t, "10/06/2024 - Doctor: Ana Silva, Patient: João Souza", appointment.String())
}

func TestAppointment_Matches(t *testing.T) {
	appointment := &Appointment{
		Doctor:          &Doctor{Name: "Ana Silva"},
		Patient:         &Patient{Name: "João Souza"},
		AppointmentDate: time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"Ana", true},
		{"SILVA", true},
		{"joão", true},
		{"10/06/2024", true},
		{"/06/", true},
		{"Pedro", false},
		{"2024-06-10", false},
		{"10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, appointment.Matches(tt.term))
		})
	}
}
