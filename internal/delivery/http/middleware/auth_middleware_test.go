package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-sedes-backend/config"
	"hospital-sedes-backend/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{Secret: "test", AccessExpiry: time.Hour})
}

func sedeSeenByNext(t *testing.T, m *AuthMiddleware, authHeader string) (string, bool) {
	t.Helper()
	var sede string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sede, ok = GetSedeFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/doctores", nil)
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	m.Resolve(next).ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	return sede, ok
}

func TestResolveInjectsSedeFromToken(t *testing.T) {
	svc := testJWT()
	token, err := svc.GenerateToken("sur")
	require.NoError(t, err)

	sede, ok := sedeSeenByNext(t, NewAuthMiddleware(svc), "Bearer "+token)
	assert.True(t, ok)
	assert.Equal(t, "sur", sede)
}

func TestResolveWithoutTokenPassesThrough(t *testing.T) {
	_, ok := sedeSeenByNext(t, NewAuthMiddleware(testJWT()), "")
	assert.False(t, ok)
}

func TestResolveInvalidTokenTreatedAsAnonymous(t *testing.T) {
	_, ok := sedeSeenByNext(t, NewAuthMiddleware(testJWT()), "Bearer not.a.token")
	assert.False(t, ok)
}

func TestResolveMalformedHeaderTreatedAsAnonymous(t *testing.T) {
	_, ok := sedeSeenByNext(t, NewAuthMiddleware(testJWT()), "Token abc")
	assert.False(t, ok)
}
