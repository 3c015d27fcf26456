package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go-clinic-registry/internal/domain/entity"
	domainRepo "go-clinic-registry/internal/domain/repository"

	"github.com/google/uuid"
)

var (
	ErrReferenceNotFound = errors.New("reference not found in registry")
	ErrDoctorNotFound    = fmt.Errorf("doctor: %w", ErrReferenceNotFound)
	ErrPatientNotFound   = fmt.Errorf("patient: %w", ErrReferenceNotFound)
)

type ClinicRepositoryOption func(*clinicRepository)

// WithStrictReferences makes ScheduleAppointment reject doctors and patients
// that were not registered in this repository.
func WithStrictReferences(strict bool) ClinicRepositoryOption {
	return func(r *clinicRepository) {
		r.strictReferences = strict
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) ClinicRepositoryOption {
	return func(r *clinicRepository) {
		r.now = now
	}
}

// clinicRepository is the in-memory registry. One RWMutex guards all three
// sequences; collections are append-only so a coarse lock never deadlocks.
type clinicRepository struct {
	mu           sync.RWMutex
	doctors      []*entity.Doctor
	patients     []*entity.Patient
	appointments []*entity.Appointment

	doctorsByID  map[uuid.UUID]*entity.Doctor
	patientsByID map[uuid.UUID]*entity.Patient

	strictReferences bool
	now              func() time.Time
}

func NewClinicRepository(opts ...ClinicRepositoryOption) domainRepo.ClinicRepository {
	r := &clinicRepository{
		doctorsByID:      make(map[uuid.UUID]*entity.Doctor),
		patientsByID:     make(map[uuid.UUID]*entity.Patient),
		strictReferences: true,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *clinicRepository) RegisterDoctor(_ context.Context, name, specialty, licenseID string) (*entity.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doctor := &entity.Doctor{
		ID:        uuid.New(),
		Seq:       int64(len(r.doctors)) + 1,
		Name:      name,
		Specialty: specialty,
		LicenseID: licenseID,
		CreatedAt: r.now(),
	}
	r.doctors = append(r.doctors, doctor)
	r.doctorsByID[doctor.ID] = doctor
	return doctor, nil
}

func (r *clinicRepository) RegisterPatient(_ context.Context, name string, birthDate time.Time, nationalID string) (*entity.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient := &entity.Patient{
		ID:         uuid.New(),
		Seq:        int64(len(r.patients)) + 1,
		Name:       name,
		BirthDate:  birthDate,
		NationalID: nationalID,
		CreatedAt:  r.now(),
	}
	r.patients = append(r.patients, patient)
	r.patientsByID[patient.ID] = patient
	return patient, nil
}

// ScheduleAppointment appends an appointment. Past dates and repeated
// doctor/patient/date triples are accepted.
func (r *clinicRepository) ScheduleAppointment(_ context.Context, doctor *entity.Doctor, patient *entity.Patient, appointmentDate time.Time) (*entity.Appointment, error) {
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.strictReferences {
		if _, ok := r.doctorsByID[doctor.ID]; !ok {
			return nil, ErrDoctorNotFound
		}
		if _, ok := r.patientsByID[patient.ID]; !ok {
			return nil, ErrPatientNotFound
		}
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		Seq:             int64(len(r.appointments)) + 1,
		Doctor:          doctor,
		Patient:         patient,
		AppointmentDate: appointmentDate,
		CreatedAt:       r.now(),
	}
	r.appointments = append(r.appointments, appointment)
	return appointment, nil
}

// SearchAppointments returns matching appointments in insertion order.
// A nil filter or empty term returns every appointment.
func (r *clinicRepository) SearchAppointments(_ context.Context, filter *entity.AppointmentFilter) ([]*entity.Appointment, error) {
	term := ""
	if filter != nil {
		term = filter.Term
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*entity.Appointment, 0)
	for _, appointment := range r.appointments {
		if appointment.Matches(term) {
			results = append(results, appointment)
		}
	}
	return results, nil
}

func (r *clinicRepository) ListAppointments(_ context.Context) ([]*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*entity.Appointment{}, r.appointments...), nil
}

func (r *clinicRepository) ListDoctors(_ context.Context) ([]*entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*entity.Doctor{}, r.doctors...), nil
}

func (r *clinicRepository) ListPatients(_ context.Context) ([]*entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*entity.Patient{}, r.patients...), nil
}

func (r *clinicRepository) FindDoctorByID(_ context.Context, id uuid.UUID) (*entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if doctor, ok := r.doctorsByID[id]; ok {
		return doctor, nil
	}
	return nil, nil
}

func (r *clinicRepository) FindPatientByID(_ context.Context, id uuid.UUID) (*entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if patient, ok := r.patientsByID[id]; ok {
		return patient, nil
	}
	return nil, nil
}
