package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
	"go-clinic-registry/internal/repository"
	"go-clinic-registry/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type failingAuditService struct{}

func (failingAuditService) LogCreate(context.Context, string, string, string, interface{}) error {
	return errors.New("audit store unavailable")
}

type ClinicUsecaseSuite struct {
	suite.Suite
	ctx      context.Context
	usecase  ClinicUsecase
	auditLog AuditLogUsecase
}

func (s *ClinicUsecaseSuite) SetupTest() {
	log := logrus.New()
	log.SetOutput(io.Discard)

	auditRepo := repository.NewAuditLogRepository()
	s.ctx = context.Background()
	s.usecase = NewClinicUsecase(log, repository.NewClinicRepository(), service.NewAuditService(log, auditRepo), time.UTC)
	s.auditLog = NewAuditLogUsecase(log, auditRepo)
}

func TestClinicUsecaseSuite(t *testing.T) {
	suite.Run(t, new(ClinicUsecaseSuite))
}

func (s *ClinicUsecaseSuite) seed() (*dto.DoctorResponse, *dto.PatientResponse) {
	doctor, err := s.usecase.RegisterDoctor(s.ctx, &dto.RegisterDoctorRequest{Name: "Ana Silva", Specialty: "Cardiology", LicenseID: "12345"})
	s.Require().NoError(err)
	patient, err := s.usecase.RegisterPatient(s.ctx, &dto.RegisterPatientRequest{Name: "João Souza", BirthDate: "1990-05-01", NationalID: "111.222.333-44"})
	s.Require().NoError(err)
	return doctor, patient
}

func (s *ClinicUsecaseSuite) TestRegistration() {
	doctor, patient := s.seed()

	s.Equal("Ana Silva (Cardiology) - License: 12345", doctor.Display)
	s.Equal(int64(1), doctor.Seq)
	s.Equal("João Souza - ID: 111.222.333-44", patient.Display)
	s.Equal("1990-05-01", patient.BirthDate)

	doctors, err := s.usecase.ListDoctors(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, doctors.Total)
	s.Equal(doctor.ID, doctors.Doctors[0].ID)

	patients, err := s.usecase.ListPatients(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, patients.Total)

	s.Run("rejects malformed birth date", func() {
		_, err := s.usecase.RegisterPatient(s.ctx, &dto.RegisterPatientRequest{Name: "X", BirthDate: "01/05/1990"})
		s.ErrorIs(err, ErrInvalidBirthDate)
	})
}

func (s *ClinicUsecaseSuite) TestScheduleAndSearch() {
	doctor, patient := s.seed()

	appointment, err := s.usecase.ScheduleAppointment(s.ctx, &dto.ScheduleAppointmentRequest{
		DoctorID:        doctor.ID.String(),
		PatientID:       patient.ID.String(),
		AppointmentDate: "2024-06-10 10:00",
	})
	s.Require().NoError(err)
	s.Equal("10/06/2024", appointment.ShortDate)
	s.Equal("10/06/2024 - Doctor: Ana Silva, Patient: João Souza", appointment.Display)
	s.Equal(10, appointment.AppointmentDate.Hour())

	for _, term := range []string{"Ana", "João", "10/06/2024"} {
		result, err := s.usecase.SearchAppointments(s.ctx, &dto.SearchAppointmentsRequest{Term: term})
		s.Require().NoError(err)
		s.Require().Equal(1, result.Total, term)
		s.Equal(appointment.ID, result.Appointments[0].ID)
	}

	result, err := s.usecase.SearchAppointments(s.ctx, &dto.SearchAppointmentsRequest{Term: "Pedro"})
	s.Require().NoError(err)
	s.Equal(0, result.Total)
	s.NotNil(result.Appointments)

	all, err := s.usecase.ListAppointments(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, all.Total)

	logs, err := s.auditLog.GetAllAuditLogs(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(3, logs.Total)
	s.Equal(entity.AuditActionDoctorCreate, logs.Logs[0].Action)
	s.Equal(entity.AuditActionPatientCreate, logs.Logs[1].Action)
	s.Equal(entity.AuditActionAppointmentCreate, logs.Logs[2].Action)
	s.Equal(appointment.ID.String(), logs.Logs[2].Metadata["entity_id"])
}

func (s *ClinicUsecaseSuite) TestScheduleErrors() {
	doctor, patient := s.seed()

	tests := []struct {
		name    string
		req     dto.ScheduleAppointmentRequest
		wantErr error
	}{
		{
			name:    "unknown doctor",
			req:     dto.ScheduleAppointmentRequest{DoctorID: uuid.NewString(), PatientID: patient.ID.String(), AppointmentDate: "2024-06-10 10:00"},
			wantErr: ErrDoctorNotFound,
		},
		{
			name:    "unknown patient",
			req:     dto.ScheduleAppointmentRequest{DoctorID: doctor.ID.String(), PatientID: uuid.NewString(), AppointmentDate: "2024-06-10 10:00"},
			wantErr: ErrPatientNotFound,
		},
		{
			name:    "malformed doctor id",
			req:     dto.ScheduleAppointmentRequest{DoctorID: "abc", PatientID: patient.ID.String(), AppointmentDate: "2024-06-10 10:00"},
			wantErr: ErrDoctorNotFound,
		},
		{
			name:    "malformed date",
			req:     dto.ScheduleAppointmentRequest{DoctorID: doctor.ID.String(), PatientID: patient.ID.String(), AppointmentDate: "tomorrow"},
			wantErr: ErrInvalidAppointmentDate,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.usecase.ScheduleAppointment(s.ctx, &tt.req)
			s.ErrorIs(err, tt.wantErr)
		})
	}

	all, err := s.usecase.ListAppointments(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, all.Total)
}

func (s *ClinicUsecaseSuite) TestAuditFailureDoesNotFailRegistration() {
	log := logrus.New()
	log.SetOutput(io.Discard)
	uc := NewClinicUsecase(log, repository.NewClinicRepository(), failingAuditService{}, nil)

	doctor, err := uc.RegisterDoctor(s.ctx, &dto.RegisterDoctorRequest{Name: "Ana"})
	s.Require().NoError(err)
	s.Equal("Ana", doctor.Name)
}

func (s *ClinicUsecaseSuite) TestAuditLogLookup() {
	s.seed()

	log, err := s.auditLog.GetAuditLog(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(entity.AuditActionPatientCreate, log.Action)

	_, err = s.auditLog.GetAuditLog(s.ctx, 99)
	s.ErrorIs(err, ErrAuditLogNotFound)
}

func TestParseAppointmentDate(t *testing.T) {
	u := &clinicUsecase{location: time.UTC}
	want := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	for _, value := range []string{"2024-06-10T10:00:00Z", "2024-06-10 10:00", "2024-06-10T10:00", "10/06/2024 10:00"} {
		t.Run(value, func(t *testing.T) {
			got, err := u.parseAppointmentDate(value)
			if err != nil {
				t.Fatalf("parseAppointmentDate(%q) returned error: %v", value, err)
			}
			if !got.Equal(want) {
				t.Fatalf("parseAppointmentDate(%q) = %s, want %s", value, got, want)
			}
		})
	}
}

func (s *ClinicUsecaseSuite) TestAppointmentDateLayouts() {
	doctor, patient := s.seed()
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		input     string
		want      time.Time
		shortDate string
	}{
		{"2024-06-10T10:00:00Z", time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), "10/06/2024"},
		{"2024-06-10T23:30:00-03:00", time.Date(2024, 6, 10, 23, 30, 0, 0, saoPaulo), "10/06/2024"},
		{"2024-06-10 10:00", time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC), "10/06/2024"},
		{"2024-06-11T08:15", time.Date(2024, 6, 11, 8, 15, 0, 0, time.UTC), "11/06/2024"},
		{"12/06/2024 14:45", time.Date(2024, 6, 12, 14, 45, 0, 0, time.UTC), "12/06/2024"},
		{"2024-06-13", time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC), "13/06/2024"},
	}

	for _, tt := range tests {
		s.Run(tt.input, func() {
			appointment, err := s.usecase.ScheduleAppointment(s.ctx, &dto.ScheduleAppointmentRequest{
				DoctorID:        doctor.ID.String(),
				PatientID:       patient.ID.String(),
				AppointmentDate: tt.input,
			})
			s.Require().NoError(err)
			s.True(tt.want.Equal(appointment.AppointmentDate), "got %s", appointment.AppointmentDate)
			s.Equal(tt.shortDate, appointment.ShortDate)
		})
	}
}
