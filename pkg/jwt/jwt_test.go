package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Boutique-api/pkg/jwt"
)

const testSecret = "secreto-de-pruebas"

func TestGenerateYParse(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "ana@example.com", "boutique-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, email, err := jwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "ana@example.com", email)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "ana@example.com", "boutique-test", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := jwt.Generate(testSecret, "user-1", "ana@example.com", "boutique-test", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "user-1", "ana@example.com", "boutique-test", 60)
	assert.Error(t, err)
}
