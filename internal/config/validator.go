package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvAppEnv,
	EnvBackendURL,
}

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
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
// for settings that are unsafe in production
func ValidateEnvWithWarnings() ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if strings.ToLower(os.Getenv(EnvAppEnv)) != EnvironmentProd {
		return warnings, nil
	}

	if os.Getenv(EnvCSRFKey) == "" {
		warnings = append(warnings, "CSRF_KEY is not set - form submissions are not CSRF protected (generate with: openssl rand -hex 16)")
	}

	if !getEnvAsBool(EnvSecureCookies, false) {
		warnings = append(warnings, "SECURE_COOKIES is off in prod - session cookies will be sent over plain HTTP")
	}

	if strings.HasPrefix(os.Getenv(EnvBackendURL), "http://") {
		warnings = append(warnings, "BACKEND_URL uses plain HTTP in prod")
	}

	return warnings, nil
}
