package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/shivuu-aqua/aqua-api/internal/application/auth"
	"github.com/shivuu-aqua/aqua-api/internal/application/dto"
	"github.com/shivuu-aqua/aqua-api/internal/domain"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/pkg/jwt"
)

// fakeAdminRepo repositorio en memoria indexado por username.
// GetByUsername devuelve (nil, nil) cuando la cuenta no existe, igual que
// los adaptadores reales.
type fakeAdminRepo struct {
	byUsername map[string]*entity.Admin
}

func (r *fakeAdminRepo) Create(_ context.Context, a *entity.Admin) error {
	r.byUsername[a.Username] = a
	return nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*entity.Admin, error) {
	a, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "clave-de-prueba", ExpDays: 7, Issuer: "aqua-api"}
}

func seedAdmin(t *testing.T, password string) *fakeAdminRepo {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeAdminRepo{byUsername: map[string]*entity.Admin{
		"admin": {
			ID:           "admin-id-1",
			Username:     "admin",
			PasswordHash: string(hash),
			Email:        "admin@shivuuaqua.com",
		},
	}}
}

func TestLogin_OK(t *testing.T) {
	uc := auth.NewAuthUseCase(seedAdmin(t, "secreto123"), testJWTConfig())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secreto123"})
	require.NoError(t, err)
	assert.True(t, out.Success)

	// El token es verificable con el mismo secreto y lleva el id del admin
	adminID, err := jwt.Parse("clave-de-prueba", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin-id-1", adminID)

	// El perfil va redactado: nunca el hash del password
	assert.Equal(t, "admin", out.Admin.Username)
	assert.Equal(t, "admin@shivuuaqua.com", out.Admin.Email)
}

// Usuario inexistente y password incorrecto deben fallar con el MISMO error
// para no revelar qué cuentas existen.
func TestLogin_FalloUniforme(t *testing.T) {
	uc := auth.NewAuthUseCase(seedAdmin(t, "secreto123"), testJWTConfig())

	_, errUnknown := uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "secreto123"})
	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "incorrecto"})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass, "ambos caminos producen el mismo error")
}

func TestLogin_CamposVacios(t *testing.T) {
	uc := auth.NewAuthUseCase(seedAdmin(t, "secreto123"), testJWTConfig())

	_, err := uc.Login(context.Background(), dto.LoginRequest{})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	var fields []string
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"username", "password"}, fields)
}
