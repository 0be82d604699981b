package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/converter"
	"hospital-sedes-backend/internal/delivery/http/middleware"
	domainRepo "hospital-sedes-backend/internal/domain/repository"
	"hospital-sedes-backend/internal/infrastructure/database"
	"hospital-sedes-backend/pkg/response"
	"hospital-sedes-backend/pkg/validator"

	"github.com/gorilla/mux"
)

// sedeFromRequest resolves the routing sede: explicit ?sede= first, then the
// token's sede hint, then the default. An explicit unknown sede is an error;
// a token label that is not a branch (the generic "usuario" login) silently
// falls back to the default.
func sedeFromRequest(r *http.Request) (branch.Branch, error) {
	if q := r.URL.Query().Get("sede"); q != "" {
		return branch.Parse(q)
	}
	if sede, ok := middleware.GetSedeFromContext(r.Context()); ok {
		if b, err := branch.Parse(sede); err == nil {
			return b, nil
		}
	}
	return branch.Default(), nil
}

// wantsTodos reports whether a list read should fan out to every sede.
// Explicit filter wins; without one, the generic login reads everything.
func wantsTodos(r *http.Request) bool {
	switch r.URL.Query().Get("filter") {
	case "todos", "all":
		return true
	case "same", "sede":
		return false
	}
	if sede, ok := middleware.GetSedeFromContext(r.Context()); ok {
		if _, err := branch.Parse(sede); err != nil {
			return true
		}
	}
	return false
}

func idFromRequest(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func writeValidationError(w http.ResponseWriter, v *validator.CustomValidator, err error) {
	response.JSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "Validación fallida",
		"fields": v.FormatValidationErrors(err),
	})
}

// writeDomainError maps shared failure modes onto status codes; notFound is
// the entity's own not-found sentinel.
func writeDomainError(w http.ResponseWriter, err error, notFound error) {
	var connErr *database.ConnectionError
	var sourceErr *domainRepo.NoSuitableSourceError

	switch {
	case notFound != nil && errors.Is(err, notFound):
		response.NotFound(w, "")
	case errors.Is(err, branch.ErrUnknownBranch):
		response.BadRequest(w, "Sede desconocida")
	case errors.Is(err, converter.ErrInvalidFecha):
		response.BadRequest(w, "Fecha inválida")
	case errors.As(err, &connErr):
		response.BadGateway(w, connErr.Error())
	case errors.As(err, &sourceErr):
		response.InternalServerError(w, sourceErr.Error())
	default:
		response.InternalServerError(w, "")
	}
}
