package handler

import (
	"encoding/json"
	"net/http"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/response"
	"hospital-sedes-backend/pkg/validator"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator       *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:       validator,
	}
}

func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	rows, err := h.doctorUsecase.List(r.Context(), b, wantsTodos(r))
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}
	id, err := idFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Id inválido")
		return
	}

	p, err := h.doctorUsecase.Get(r.Context(), b, id)
	if err != nil {
		writeDomainError(w, err, usecase.ErrDoctorNotFound)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	p, err := h.doctorUsecase.Create(r.Context(), b, &req)
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}
	id, err := idFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Id inválido")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	p, err := h.doctorUsecase.Update(r.Context(), b, id, &req)
	if err != nil {
		writeDomainError(w, err, usecase.ErrDoctorNotFound)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

func (h *DoctorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}
	id, err := idFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Id inválido")
		return
	}

	if err := h.doctorUsecase.Delete(r.Context(), b, id); err != nil {
		writeDomainError(w, err, usecase.ErrDoctorNotFound)
		return
	}

	response.Message(w, http.StatusOK, "Doctor eliminado")
}
