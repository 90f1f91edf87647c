package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := GenerateJWT(42, "admin", testSecret, 60)
	require.NoError(t, err)

	claims, err := ValidateJWT(signed, testSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "goalpool", claims.Issuer)
}

func TestValidateWrongSecret(t *testing.T) {
	signed, err := GenerateJWT(42, "user", testSecret, 60)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "other-secret")
	assert.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	signed, err := GenerateJWT(42, "user", testSecret, -5)
	require.NoError(t, err)

	_, err = ValidateJWT(signed, testSecret)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateEmptyInputs(t *testing.T) {
	_, err := ValidateJWT("", testSecret)
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", testSecret)
	assert.Error(t, err)
}
