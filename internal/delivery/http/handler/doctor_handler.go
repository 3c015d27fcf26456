package handler

import (
	"encoding/json"
	"net/http"

	"go-clinic-registry/internal/delivery/dto"
	"go-clinic-registry/internal/usecase"
	"go-clinic-registry/pkg/response"
)

type DoctorHandler struct {
	clinicUsecase usecase.ClinicUsecase
}

func NewDoctorHandler(clinicUsecase usecase.ClinicUsecase) *DoctorHandler {
	return &DoctorHandler{
		clinicUsecase: clinicUsecase,
	}
}

func (h *DoctorHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	doctor, err := h.clinicUsecase.RegisterDoctor(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to register doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor registered successfully", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.clinicUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}
