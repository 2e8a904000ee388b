package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearEnvVars(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "APP_ENV")
	assert.Contains(t, err.Error(), "BACKEND_URL")
}

func TestValidateEnv_AllSet(t *testing.T) {
	clearEnvVars(t)
	setRequired(t)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings_DevHasNone(t *testing.T) {
	clearEnvVars(t)
	setRequired(t)

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateEnvWithWarnings_InsecureProd(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("BACKEND_URL", "http://backend:8000")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "CSRF_KEY")
	assert.Contains(t, warnings[1], "SECURE_COOKIES")
	assert.Contains(t, warnings[2], "BACKEND_URL")
}

func TestValidateEnvWithWarnings_SecureProd(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("BACKEND_URL", "https://backend.example.com")
	t.Setenv("CSRF_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("SECURE_COOKIES", "1")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidateEnvWithWarnings_PropagatesError(t *testing.T) {
	clearEnvVars(t)

	warnings, err := ValidateEnvWithWarnings()
	assert.Error(t, err)
	assert.Nil(t, warnings)
}
