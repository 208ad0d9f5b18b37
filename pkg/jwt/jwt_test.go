package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivuu-aqua/aqua-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate("secreto", "admin-42", "aqua-api", 7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	adminID, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "admin-42", adminID)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("secreto", "admin-42", "aqua-api", 7)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err, "un token firmado con otro secreto no debe validar")
}

func TestParse_Expirado(t *testing.T) {
	// Expiración en el pasado
	token, err := jwt.Generate("secreto", "admin-42", "aqua-api", -1)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", token)
	assert.Error(t, err, "un token expirado no debe validar")
}

func TestParse_Basura(t *testing.T) {
	_, err := jwt.Parse("secreto", "no-es-un-jwt")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "admin-42", "aqua-api", 7)
	assert.Error(t, err)
}
