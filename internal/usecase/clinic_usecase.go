package usecase

import (
	"context"
	"errors"
	"time"

	"go-clinic-registry/internal/converter"
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
	"go-clinic-registry/internal/domain/repository"
	repositoryImpl "go-clinic-registry/internal/repository"
	"go-clinic-registry/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrPatientNotFound        = errors.New("patient not found")
	ErrInvalidBirthDate       = errors.New("invalid birth date")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date")
)

// appointmentDateLayouts are tried in order; layouts without a zone use the
// usecase location.
var appointmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"02/01/2006 15:04",
	"2006-01-02",
}

type ClinicUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	SearchAppointments(ctx context.Context, req *dto.SearchAppointmentsRequest) (*dto.AppointmentListResponse, error)
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type clinicUsecase struct {
	log          *logrus.Logger
	clinicRepo   repository.ClinicRepository
	auditService service.AuditService
	location     *time.Location
}

func NewClinicUsecase(
	log *logrus.Logger,
	clinicRepo repository.ClinicRepository,
	auditService service.AuditService,
	location *time.Location,
) ClinicUsecase {
	if location == nil {
		location = time.Local
	}
	return &clinicUsecase{
		log:          log,
		clinicRepo:   clinicRepo,
		auditService: auditService,
		location:     location,
	}
}

func (u *clinicUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.clinicRepo.RegisterDoctor(ctx, req.Name, req.Specialty, req.LicenseID)
	if err != nil {
		u.log.Warnf("Failed to register doctor: %+v", err)
		return nil, err
	}

	resp := converter.DoctorToResponse(doctor)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, "doctor", doctor.ID.String(), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the registration for audit log errors
	}

	u.log.Infof("Doctor registered: id=%s, seq=%d", doctor.ID, doctor.Seq)
	return resp, nil
}

func (u *clinicUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.ParseInLocation(entity.BirthDateLayout, req.BirthDate, u.location)
	if err != nil {
		return nil, ErrInvalidBirthDate
	}

	patient, err := u.clinicRepo.RegisterPatient(ctx, req.Name, birthDate, req.NationalID)
	if err != nil {
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}

	resp := converter.PatientToResponse(patient)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionPatientCreate, "patient", patient.ID.String(), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Patient registered: id=%s, seq=%d", patient.ID, patient.Seq)
	return resp, nil
}

// ScheduleAppointment resolves the doctor and patient by ID and appends the
// appointment. Double-booking is not checked.
func (u *clinicUsecase) ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentDate, err := u.parseAppointmentDate(req.AppointmentDate)
	if err != nil {
		return nil, err
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.clinicRepo.FindDoctorByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	patient, err := u.clinicRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment, err := u.clinicRepo.ScheduleAppointment(ctx, doctor, patient, appointmentDate)
	if err != nil {
		u.log.Warnf("Failed to schedule appointment: %+v", err)
		switch {
		case errors.Is(err, repositoryImpl.ErrDoctorNotFound):
			return nil, ErrDoctorNotFound
		case errors.Is(err, repositoryImpl.ErrPatientNotFound):
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	resp := converter.AppointmentToResponse(appointment)
	if err := u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	u.log.Infof("Appointment scheduled: id=%s, doctor=%s, patient=%s, date=%s", appointment.ID, doctor.ID, patient.ID, appointment.ShortDate())
	return resp, nil
}

func (u *clinicUsecase) SearchAppointments(ctx context.Context, req *dto.SearchAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	filter := &entity.AppointmentFilter{}
	if req != nil {
		filter.Term = req.Term
	}

	appointments, err := u.clinicRepo.SearchAppointments(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to search appointments for %q: %+v", filter.Term, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *clinicUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.clinicRepo.ListAppointments(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *clinicUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.clinicRepo.ListDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

func (u *clinicUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.clinicRepo.ListPatients(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *clinicUsecase) parseAppointmentDate(value string) (time.Time, error) {
	for _, layout := range appointmentDateLayouts {
		if t, err := time.ParseInLocation(layout, value, u.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidAppointmentDate
}
