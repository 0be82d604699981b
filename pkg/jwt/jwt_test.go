package jwt

import (
	"testing"
	"time"

	"hospital-sedes-backend/config"

	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) config.JWTConfig {
	return config.JWTConfig{Secret: secret, AccessExpiry: time.Hour}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(testConfig("unit-test-secret"))

	token, err := svc.GenerateToken("norte")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "norte", claims.Sede)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := NewJWTService(testConfig("secret-a"))
	token, err := svc.GenerateToken("centro")
	assert.NoError(t, err)

	other := NewJWTService(testConfig("secret-b"))
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: -time.Minute})
	token, err := svc.GenerateToken("sur")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService(testConfig("s"))
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
