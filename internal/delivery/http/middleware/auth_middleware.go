package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-sedes-backend/pkg/jwt"
)

type contextKey string

const (
	SedeKey    contextKey = "sede"
	TokenIDKey contextKey = "token_id"
)

// AuthMiddleware resolves an optional Bearer token into a sede hint. The
// token never gates access: every endpoint works anonymously and routes to
// the default sede, a valid token just changes where unscoped requests go.
// Invalid or expired tokens are treated as absent.
type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), SedeKey, claims.Sede)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSedeFromContext extracts the token's sede hint from context.
func GetSedeFromContext(ctx context.Context) (string, bool) {
	sede, ok := ctx.Value(SedeKey).(string)
	return sede, ok
}

// GetTokenIDFromContext extracts the token id from context.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
