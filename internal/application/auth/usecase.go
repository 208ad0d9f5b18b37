package auth

import (
	"context"

	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/internal/domain/repository"
	"github.com/shivuu-aqua/aqua-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase autenticación del panel de admin. No hay registro self-service;
// las cuentas se aprovisionan con cmd/create_admin.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite un JWT con expiración fija.
// Usuario inexistente y password incorrecto fallan igual (ErrInvalidCredentials)
// para no filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		var fields []domain.FieldError
		if in.Username == "" {
			fields = append(fields, domain.FieldError{Field: "username", Message: "username is required"})
		}
		if in.Password == "" {
			fields = append(fields, domain.FieldError{Field: "password", Message: "password is required"})
		}
		return nil, domain.NewValidationError(fields...)
	}

	admin, err := uc.adminRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		Admin: dto.AdminProfile{
			ID:       admin.ID,
			Username: admin.Username,
			Email:    admin.Email,
		},
	}, nil
}
