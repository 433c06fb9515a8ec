package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the variables every server deployment must set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// PostgresEnvVars are additionally required when STORAGE_BACKEND is postgres (the default)
var PostgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// DiscordEnvVars are required by the Discord front end
var DiscordEnvVars = []string{
	"API_KEY",
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
}

// ValidateEnv checks that all required environment variables for the
// selected storage backend are set and that the schema version matches expectations
func ValidateEnv() error {
	if err := checkSchemaVersion(); err != nil {
		return err
	}

	required := RequiredEnvVars
	backend := strings.ToLower(os.Getenv("STORAGE_BACKEND"))
	if backend == "" || backend == StorageBackendPostgres {
		required = append(append([]string{}, required...), PostgresEnvVars...)
	}
	return checkRequired(required)
}

// ValidateDiscordEnv checks the variables the Discord bot needs
func ValidateDiscordEnv() error {
	if err := checkSchemaVersion(); err != nil {
		return err
	}
	return checkRequired(DiscordEnvVars)
}

func checkSchemaVersion() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

func checkRequired(vars []string) error {
	var missing []string
	for _, envVar := range vars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if strings.EqualFold(os.Getenv("STORAGE_BACKEND"), StorageBackendMemory) {
		warnings = append(warnings, "STORAGE_BACKEND is memory - farm state is lost on restart")
	}

	return warnings, nil
}
