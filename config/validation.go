package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the values without safe defaults are set
func ValidateConfig(cfg *Config) error {
	if cfg.DBPassword == "" {
		return ValidationError{Field: "DB_PASSWORD", Message: "must be set"}
	}
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "must be set"}
	}
	if cfg.PasswordHash == "" {
		return ValidationError{Field: "APP_PASSWORD_HASH", Message: "must be set"}
	}
	return nil
}
