package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SecuritySettings tunes the public surface of the REST server.
type SecuritySettings struct {
	// AllowedOrigins is passed to the CORS middleware.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
	// SignupRate is the number of signups per second a single client IP may issue.
	SignupRate float64 `mapstructure:"signup_rate" validate:"gt=0"`
	// SignupBurst is the token bucket size belonging to SignupRate.
	SignupBurst int `mapstructure:"signup_burst" validate:"gte=1"`
}

// Validate checks that all fields in SecuritySettings are valid
func (s *SecuritySettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for SecuritySettings: %w", err)
	}
	return nil
}
