package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. ACCOUNT_DATABASE_DSN overrides database.dsn.
const EnvPrefix = "ACCOUNT"

// RestConfig is the complete configuration of the REST server.
type RestConfig struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	Security  SecuritySettings  `mapstructure:"security"`
	Telemetry TelemetrySettings `mapstructure:"telemetry"`
}

// Validate checks the top level fields and every nested settings block.
func (c *RestConfig) Validate() error {
	if err := validator.New().Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}
	return errors.Join(
		c.Logger.Validate(),
		c.Database.Validate(),
		c.Security.Validate(),
		c.Telemetry.Validate(),
	)
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and defaults, and validates the result. An empty path skips
// the file and relies on defaults and the environment alone.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "account.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 0)
	v.SetDefault("database.max_idle_conns", 0)
	v.SetDefault("database.conn_max_lifetime_seconds", 0)
	v.SetDefault("security.allowed_origins", []string{"*"})
	v.SetDefault("security.signup_rate", 1.0)
	v.SetDefault("security.signup_burst", 5)
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "")
	v.SetDefault("telemetry.environment", "development")
	v.SetDefault("telemetry.sampling_rate", 1.0)
	return v
}
