package repository

import (
	"context"
	"time"

	"go-clinic-registry/internal/domain/entity"

	"github.com/google/uuid"
)

// ClinicRepository owns doctors, patients and appointments. Collections only grow.
type ClinicRepository interface {
	RegisterDoctor(ctx context.Context, name, specialty, licenseID string) (*entity.Doctor, error)
	RegisterPatient(ctx context.Context, name string, birthDate time.Time, nationalID string) (*entity.Patient, error)
	ScheduleAppointment(ctx context.Context, doctor *entity.Doctor, patient *entity.Patient, appointmentDate time.Time) (*entity.Appointment, error)
	SearchAppointments(ctx context.Context, filter *entity.AppointmentFilter) ([]*entity.Appointment, error)
	ListAppointments(ctx context.Context) ([]*entity.Appointment, error)

	ListDoctors(ctx context.Context) ([]*entity.Doctor, error)
	ListPatients(ctx context.Context) ([]*entity.Patient, error)
	FindDoctorByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error)
	FindPatientByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
}
