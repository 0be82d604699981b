package handler

import (
	"encoding/json"
	"net/http"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/response"
	"hospital-sedes-backend/pkg/validator"
)

type ConsultorioHandler struct {
	consultorioUsecase usecase.ConsultorioUsecase
	validator       *validator.CustomValidator
}

func NewConsultorioHandler(consultorioUsecase usecase.ConsultorioUsecase, validator *validator.CustomValidator) *ConsultorioHandler {
	return &ConsultorioHandler{
		consultorioUsecase: consultorioUsecase,
		validator:       validator,
	}
}

func (h *ConsultorioHandler) List(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	rows, err := h.consultorioUsecase.List(r.Context(), b, wantsTodos(r))
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

func (h *ConsultorioHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	p, err := h.consultorioUsecase.Get(r.Context(), b, id)
	if err != nil {
		writeDomainError(w, err, usecase.ErrConsultorioNotFound)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

func (h *ConsultorioHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}

	var req dto.CreateConsultorioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	p, err := h.consultorioUsecase.Create(r.Context(), b, &req)
	if err != nil {
		writeDomainError(w, err, nil)
		return
	}

	response.JSON(w, http.StatusCreated, p)
}

func (h *ConsultorioHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateConsultorioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Cuerpo de solicitud inválido")
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		writeValidationError(w, h.validator, err)
		return
	}

	p, err := h.consultorioUsecase.Update(r.Context(), b, id, &req)
	if err != nil {
		writeDomainError(w, err, usecase.ErrConsultorioNotFound)
		return
	}

	response.JSON(w, http.StatusOK, p)
}

func (h *ConsultorioHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.consultorioUsecase.Delete(r.Context(), b, id); err != nil {
		writeDomainError(w, err, usecase.ErrConsultorioNotFound)
		return
	}

	response.Message(w, http.StatusOK, "Consultorio eliminado")
}
