package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		Seq:             appointment.Seq,
		AppointmentDate: appointment.AppointmentDate,
		ShortDate:       appointment.ShortDate(),
		Display:         appointment.String(),
		CreatedAt:       appointment.CreatedAt,
	}
	if doctor := DoctorToResponse(appointment.Doctor); doctor != nil {
		response.Doctor = *doctor
	}
	if patient := PatientToResponse(appointment.Patient); patient != nil {
		response.Patient = *patient
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []*entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		if resp := AppointmentToResponse(appointment); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
