package converter

import (
	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		Seq:        patient.Seq,
		Name:       patient.Name,
		BirthDate:  patient.BirthDate.Format(entity.BirthDateLayout),
		NationalID: patient.NationalID,
		Display:    patient.String(),
		CreatedAt:  patient.CreatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []*entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for _, patient := range patients {
		if resp := PatientToResponse(patient); resp != nil {
			responses = append(responses, *resp)
		}
	}
	return responses
}
