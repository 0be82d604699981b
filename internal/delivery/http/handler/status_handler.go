package handler

import (
	"errors"
	"net/http"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/infrastructure/database"
	"hospital-sedes-backend/internal/usecase"
	"hospital-sedes-backend/pkg/response"

	"github.com/gorilla/mux"
)

type StatusHandler struct {
	statusUsecase usecase.StatusUsecase
}

func NewStatusHandler(statusUsecase usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{statusUsecase: statusUsecase}
}

func (h *StatusHandler) Probe(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.statusUsecase.ProbeAll(r.Context()))
}

func (h *StatusHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	b, err := sedeFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Sede desconocida")
		return
	}
	tableBase := mux.Vars(r)["table"]

	report, err := h.statusUsecase.Inspect(r.Context(), b, tableBase)
	if err != nil {
		var connErr *database.ConnectionError
		if errors.As(err, &connErr) {
			response.BadGateway(w, connErr.Error())
			return
		}
		response.InternalServerError(w, "")
		return
	}

	response.JSON(w, http.StatusOK, report)
}

// Health is a liveness check: it does not touch the datastores, the
// status probe exists for that.
func Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"sedes":  branch.Keys(),
	})
}
