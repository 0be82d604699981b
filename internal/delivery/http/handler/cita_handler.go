package handler

import (
	"encoding/json"
	"net/http"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/response"
	"hospital-sedes-backend/pkg/validator"
)

type CitaHandler struct {
	citaUsecase usecase.CitaUsecase
	validator       *validator.CustomValidator
}

func NewCitaHandler(citaUsecase usecase.CitaUsecase, validator *validator.CustomValidator) *CitaHandler {
	return &CitaHandler{
		citaUsecase: citaUsecase,
		validator:       validator,
	}
}

func (h *CitaHandler) List(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	rows, err := h.citaUsecase.List(r.Context(), b, wantsTodos(r))
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

func (h *CitaHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	p, err := h.citaUsecase.Get(r.Context(), b, id)
	if err != nil {
		writeDomainError(w, err, usecase.ErrCitaNotFound)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

func (h *CitaHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	var req dto.CreateCitaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	p, err := h.citaUsecase.Create(r.Context(), b, &req)
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

func (h *CitaHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateCitaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	p, err := h.citaUsecase.Update(r.Context(), b, id, &req)
	if err != nil {
		writeDomainError(w, err, usecase.ErrCitaNotFound)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

func (h *CitaHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.citaUsecase.Delete(r.Context(), b, id); err != nil {
		writeDomainError(w, err, usecase.ErrCitaNotFound)
		return
	}

	response.Message(w, http.StatusOK, "Cita eliminada")
}
