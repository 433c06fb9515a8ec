package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAll(t *testing.T, vars []string, value string) {
	t.Helper()
	for _, v := range vars {
		t.Setenv(v, value)
	}
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	setAll(t, PostgresEnvVars, "")
	t.Setenv("API_KEY", "")
	t.Setenv("STORAGE_BACKEND", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestValidateEnv_MemoryBackendSkipsDatabase(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("API_KEY", "key")
	setAll(t, PostgresEnvVars, "")

	assert.NoError(t, ValidateEnv())
}

func TestValidateDiscordEnv(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	setAll(t, DiscordEnvVars, "")
	t.Setenv("API_KEY", "key")

	err := ValidateDiscordEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
	assert.NotContains(t, err.Error(), "DB_")

	setAll(t, DiscordEnvVars, "set")
	assert.NoError(t, ValidateDiscordEnv())
}

func TestValidateEnvWithWarnings_InsecureDefaults(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", "")
	setAll(t, PostgresEnvVars, "test_value")
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("API_KEY", "generate_with_openssl_rand_hex_32")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2, "Should have 2 warnings")
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestValidateEnvWithWarnings_MemoryBackend(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("API_KEY", "key")
	t.Setenv("DB_PASSWORD", "")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "memory")
}
