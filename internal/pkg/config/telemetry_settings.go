package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// TelemetrySettings configures OpenTelemetry trace export over OTLP/HTTP.
type TelemetrySettings struct {
	Enabled      bool    `mapstructure:"enabled"`
	Endpoint     string  `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Environment  string  `mapstructure:"environment"`
	SamplingRate float64 `mapstructure:"sampling_rate" validate:"gte=0,lte=1"`
}

// Validate checks that all fields in TelemetrySettings are valid
func (s *TelemetrySettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for TelemetrySettings: %w", err)
	}
	return nil
}
