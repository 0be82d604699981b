package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-sedes-backend/internal/branch"
	"hospital-sedes-backend/internal/delivery/http/middleware"
	domainRepo "hospital-sedes-backend/internal/domain/repository"
	"hospital-sedes-backend/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqWithTokenSede(target, sede string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := context.WithValue(r.Context(), middleware.SedeKey, sede)
	return r.WithContext(ctx)
}

func TestSedeFromRequestQueryWins(t *testing.T) {
	r := reqWithTokenSede("/api/doctores?sede=sur", "norte")
	b, err := sedeFromRequest(r)
	assert.NoError(t, err)
	assert.Equal(t, branch.Sur, b)
}

func TestSedeFromRequestFallsBackToToken(t *testing.T) {
	r := reqWithTokenSede("/api/doctores", "norte")
	b, err := sedeFromRequest(r)
	assert.NoError(t, err)
	assert.Equal(t, branch.Norte, b)
}

func TestSedeFromRequestDefault(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/doctores", nil)
	b, err := sedeFromRequest(r)
	assert.NoError(t, err)
	assert.Equal(t, branch.Default(), b)
}

func TestSedeFromRequestGenericLoginDefaults(t *testing.T) {
	// The "usuario" token carries a label that is not a branch.
	r := reqWithTokenSede("/api/doctores", "usuario")
	b, err := sedeFromRequest(r)
	assert.NoError(t, err)
	assert.Equal(t, branch.Default(), b)
}

func TestSedeFromRequestExplicitUnknownFails(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/doctores?sede=oeste", nil)
	_, err := sedeFromRequest(r)
	assert.ErrorIs(t, err, branch.ErrUnknownBranch)
}

func TestWantsTodos(t *testing.T) {
	assert.True(t, wantsTodos(httptest.NewRequest(http.MethodGet, "/x?filter=todos", nil)))
	assert.True(t, wantsTodos(httptest.NewRequest(http.MethodGet, "/x?filter=all", nil)))
	assert.False(t, wantsTodos(httptest.NewRequest(http.MethodGet, "/x?filter=same", nil)))
	assert.False(t, wantsTodos(httptest.NewRequest(http.MethodGet, "/x", nil)))

	// Generic login reads everything unless it narrows explicitly.
	assert.True(t, wantsTodos(reqWithTokenSede("/x", "usuario")))
	assert.False(t, wantsTodos(reqWithTokenSede("/x?filter=same", "usuario")))
	assert.False(t, wantsTodos(reqWithTokenSede("/x", "norte")))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestWriteDomainErrorMapping(t *testing.T) {
	notFound := errors.New("thing not found")

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: notFound, wantStatus: http.StatusNotFound},
		{name: "unknown sede", err: branch.ErrUnknownBranch, wantStatus: http.StatusBadRequest},
		{
			name:       "connection failure",
			err:        &database.ConnectionError{Sede: "sur", Addr: "db-sur:5432", Err: errors.New("refused")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "schema exhaustion",
			err:        &domainRepo.NoSuitableSourceError{Entity: "doctor", Sede: "norte", Cause: errors.New("missing")},
			wantStatus: http.StatusInternalServerError,
		},
		{name: "unclassified", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDomainError(rec, tt.err, notFound)
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeError(t, rec)
			assert.NotEmpty(t, body["error"])
		})
	}
}
