package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Seq:       doctor.Seq,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		LicenseID: doctor.LicenseID,
		Display:   doctor.String(),
		CreatedAt: doctor.CreatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []*entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		if resp := DoctorToResponse(doctor); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
