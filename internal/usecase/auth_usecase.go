package usecase

import (
	"context"
	"errors"

	"hospital-sedes-backend/internal/delivery/dto"
	"hospital-sedes-backend/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Per-sede credentials are fixed; there is no user table. The "usuario"
// account is a generic login whose sede label does not match any branch, so
// requests under it route to the default sede unless they say otherwise.
var sedeCredentials = map[string]struct {
	username string
	password string
}{
	"norte":   {"norte", "norte"},
	"centro":  {"centro", "centro"},
	"sur":     {"sur", "sur"},
	"usuario": {"usuario", "usuario"},
}

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
}

func NewAuthUsecase(log *logrus.Logger, jwtService *jwt.JWTService) AuthUsecase {
	return &authUsecase{
		log:        log,
		jwtService: jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var sede string
	for s, cred := range sedeCredentials {
		if cred.username == req.Username && cred.password == req.Password {
			sede = s
			break
		}
	}
	if sede == "" {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(sede)
	if err != nil {
		u.log.Warnf("Failed to generate token for sede %s: %+v", sede, err)
		return nil, err
	}

	return &dto.LoginResponse{
		OK:    true,
		Sede:  sede,
		Token: token,
	}, nil
}
