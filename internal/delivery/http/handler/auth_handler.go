package handler

import (
	"encoding/json"
	"net/http"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/response"
	"hospital-sedes-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "message": "Faltan credenciales"})
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.JSON(w, http.StatusBadRequest, map[string]interface{}{"ok": false, "message": "Faltan credenciales"})
		return
	}

	res, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			response.Unauthorized(w, "Credenciales inválidas")
			return
		}
		response.JSON(w, http.StatusInternalServerError, map[string]interface{}{"ok": false, "message": err.Error()})
		return
	}

	response.JSON(w, http.StatusOK, res)
}
