package handler

import (
	"encoding/json"
	"net/http"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/response"
	"hospital-sedes-backend/pkg/validator"
)

type CentroHandler struct {
	centroUsecase usecase.CentroUsecase
	validator           *validator.CustomValidator
}

func NewCentroHandler(centroUsecase usecase.CentroUsecase, validator *validator.CustomValidator) *CentroHandler {
	return &CentroHandler{
		centroUsecase: centroUsecase,
		validator:           validator,
	}
}

func (h *CentroHandler) List(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	rows, err := h.centroUsecase.List(r.Context(), b)
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

func (h *CentroHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	e, err := h.centroUsecase.Get(r.Context(), b, id)
	if err != nil {
		writeDomainError(w, err, usecase.ErrCentroNotFound)
		return
	}

	response.JSON(w, http.StatusOK, e)
}

func (h *CentroHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	var req dto.CreateCentroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	e, err := h.centroUsecase.Create(r.Context(), b, &req)
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusCreated, e)
}

func (h *CentroHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateCentroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	e, err := h.centroUsecase.Update(r.Context(), b, id, &req)
	if err != nil {
		writeDomainError(w, err, usecase.ErrCentroNotFound)
		return
	}

	response.JSON(w, http.StatusOK, e)
}

func (h *CentroHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.centroUsecase.Delete(r.Context(), b, id); err != nil {
		writeDomainError(w, err, usecase.ErrCentroNotFound)
		return
	}

	response.Message(w, http.StatusOK, "Centro eliminado")
}
