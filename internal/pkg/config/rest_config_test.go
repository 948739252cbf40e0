//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: postgres
  dsn: "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
  name: accounts
security:
  allowed_origins: ["https://acme.com"]
  signup_rate: 2
  signup_burst: 10
telemetry:
  enabled: true
  endpoint: "localhost:4318"
  sampling_rate: 0.5
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, testConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, PostgresDbType, cfg.Database.Type)
	assert.Equal(t, "accounts", cfg.Database.Name)
	assert.Equal(t, []string{"https://acme.com"}, cfg.Security.AllowedOrigins)
	assert.Equal(t, 2.0, cfg.Security.SignupRate)
	assert.Equal(t, 10, cfg.Security.SignupBurst)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, 0.5, cfg.Telemetry.SamplingRate)
}

func TestInitializeRestConfig_Defaults(t *testing.T) {
	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestInitializeRestConfig_EnvOverride(t *testing.T) {
	t.Setenv("ACCOUNT_PORT", "7070")
	t.Setenv("ACCOUNT_DATABASE_DSN", "override.db")

	cfg, err := InitializeRestConfig("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "override.db", cfg.Database.DSN)
}

func TestInitializeRestConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid settings", func(t *testing.T) {
		_, err := InitializeRestConfig(writeConfig(t, "logger:\n  log_type: syslog\n"))
		assert.Error(t, err)
	})

	t.Run("telemetry enabled without endpoint", func(t *testing.T) {
		_, err := InitializeRestConfig(writeConfig(t, "telemetry:\n  enabled: true\n"))
		assert.Error(t, err)
	})
}
