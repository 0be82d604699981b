package handler

import (
	"encoding/json"
	"net/http"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/response"
	"hospital-sedes-backend/pkg/validator"
)

type EspecialidadHandler struct {
	especialidadUsecase usecase.EspecialidadUsecase
	validator           *validator.CustomValidator
}

func NewEspecialidadHandler(especialidadUsecase usecase.EspecialidadUsecase, validator *validator.CustomValidator) *EspecialidadHandler {
	return &EspecialidadHandler{
		especialidadUsecase: especialidadUsecase,
		validator:           validator,
	}
}

func (h *EspecialidadHandler) List(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	rows, err := h.especialidadUsecase.List(r.Context(), b)
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

func (h *EspecialidadHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	e, err := h.especialidadUsecase.Get(r.Context(), b, id)
	if err != nil {
		writeDomainError(w, err, usecase.ErrEspecialidadNotFound)
		return
	}

	response.JSON(w, http.StatusOK, e)
}

func (h *EspecialidadHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	var req dto.CreateEspecialidadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	e, err := h.especialidadUsecase.Create(r.Context(), b, &req)
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusCreated, e)
}

func (h *EspecialidadHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateEspecialidadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	e, err := h.especialidadUsecase.Update(r.Context(), b, id, &req)
	if err != nil {
		writeDomainError(w, err, usecase.ErrEspecialidadNotFound)
		return
	}

	response.JSON(w, http.StatusOK, e)
}

func (h *EspecialidadHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.especialidadUsecase.Delete(r.Context(), b, id); err != nil {
		writeDomainError(w, err, usecase.ErrEspecialidadNotFound)
		return
	}

	response.Message(w, http.StatusOK, "Especialidad eliminada")
}
