// Package auth implementa el inicio de sesión y la consulta de identidad propia.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/correduria-api/internal/application/access"
	"github.com/jhoicas/correduria-api/internal/application/dto"
	"github.com/jhoicas/correduria-api/internal/application/usecase"
	"github.com/jhoicas/correduria-api/internal/domain"
	"github.com/jhoicas/correduria-api/internal/domain/entity"
	"github.com/jhoicas/correduria-api/internal/domain/repository"
	"github.com/jhoicas/correduria-api/pkg/config"
	"github.com/jhoicas/correduria-api/pkg/jwt"
)

// UseCase autenticación por email/contraseña con emisión de JWT.
type UseCase struct {
	users repository.UserRepository
	cfg   config.JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, cfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Login verifica credenciales y devuelve el JWT con el usuario. Credenciales
// incorrectas y cuentas inexistentes producen la misma respuesta.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if u.Status != entity.UserStatusActive {
		return nil, domain.ErrForbidden
	}
	affiliateID := ""
	if u.AffiliateID != nil {
		affiliateID = *u.AffiliateID
	}
	token, err := jwt.Generate(uc.cfg.Secret, u.ID, string(u.Role), affiliateID, uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: usecase.ToUserResponse(u)}, nil
}

// Me devuelve el usuario autenticado de la petición.
func (uc *UseCase) Me(ctx context.Context, caller access.Caller) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthenticated
	}
	resp := usecase.ToUserResponse(u)
	return &resp, nil
}
