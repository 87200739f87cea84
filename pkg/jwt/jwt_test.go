package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/finbot-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "formularz-www", "invoice:write", "finbot-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, scope, err := pkgjwt.Parse(testSecret, tok, "finbot-test")
	require.NoError(t, err)
	assert.Equal(t, "formularz-www", subject)
	assert.Equal(t, "invoice:write", scope)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "x", "", "finbot-test", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok, "finbot-test")
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "x", "", "finbot-test", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok, "")
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "x", "", "finbot-test", 60)
	assert.Error(t, err)
}

func TestParse_EmisorDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "x", "read", "otro-emisor", 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok, "finbot-test")
	assert.Error(t, err, "el emisor debe coincidir")
}

func TestParse_SinEmisorEsperado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "x", "read", "cualquiera", 60)
	require.NoError(t, err)

	subject, _, err := pkgjwt.Parse(testSecret, tok, "")
	require.NoError(t, err)
	assert.Equal(t, "x", subject)
}
