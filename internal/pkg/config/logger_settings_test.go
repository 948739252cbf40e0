//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileLogger() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/account-reactive/account.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(s *LoggerSettings)
		wantErr bool
	}{
		{"file logger", func(*LoggerSettings) {}, false},
		{"critical level", func(s *LoggerSettings) { s.LogLevel = LogLevelCritical }, false},
		{"warn is not a level name", func(s *LoggerSettings) { s.LogLevel = "warn" }, true},
		{"console ignores rotation", func(s *LoggerSettings) { s.LogType = LogTypeConsole; s.MaxSize = 0 }, false},
		{"file without path", func(s *LoggerSettings) { s.FilePath = "" }, true},
		{"max size above 100", func(s *LoggerSettings) { s.MaxSize = 101 }, true},
		{"no backups", func(s *LoggerSettings) { s.MaxBackups = 0 }, true},
		{"max age above a year", func(s *LoggerSettings) { s.MaxAge = 366 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := fileLogger()
			tt.modify(&settings)

			err := settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettings_ShippedConfig(t *testing.T) {
	cfg, err := InitializeRestConfig("../../../configs/rest-app.yaml")
	require.NoError(t, err)

	assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
}

func TestLoggerSettings_FileLoggerFromYAML(t *testing.T) {
	cfg, err := InitializeRestConfig(writeConfig(t, `
logger:
  log_level: critical
  log_type: file
  file_path: /var/log/account-reactive/account.log
  max_size: 10
  max_backups: 3
  max_age: 28
`))
	require.NoError(t, err)

	assert.Equal(t, fileLogger().FilePath, cfg.Logger.FilePath)
	assert.Equal(t, LogLevelCritical, cfg.Logger.LogLevel)
	assert.Equal(t, 3, cfg.Logger.MaxBackups)
}

func TestLoggerSettings_EnvOverride(t *testing.T) {
	t.Setenv("ACCOUNT_LOGGER_LOG_LEVEL", LogLevelDebug)

	cfg, err := InitializeRestConfig(writeConfig(t, "logger:\n  log_level: error\n  log_type: console\n"))
	require.NoError(t, err)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
}

func TestLoggerSettings_FileTypeWithoutRotationFromEnv(t *testing.T) {
	t.Setenv("ACCOUNT_LOGGER_LOG_TYPE", LogTypeFile)

	_, err := InitializeRestConfig("")
	assert.Error(t, err)
}
