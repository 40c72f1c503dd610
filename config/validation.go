package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the values a running server cannot do without.
// Development defaults cover host/port settings, so only credentials and
// the token secret are hard requirements outside of tests.
func ValidateConfig(cfg *Config) error {
	if IsTest() {
		return nil
	}

	var errors []string

	if cfg.DBUser == "" {
		errors = append(errors, "DB_USER (or db_user secret) is required")
	}
	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD (or db_password secret) is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET (or jwt_secret secret) is required")
	}
	if IsProduction() && cfg.DBSSLMode == "disable" {
		errors = append(errors, "DB_SSL_MODE must not be disable in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
