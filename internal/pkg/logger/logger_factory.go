package logger

import (
	"errors"
	"fmt"
	"sync"

	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
	"github.com/wisskirchenj/account-reactive/internal/pkg/version"
)

// ErrNotInitialized is returned by GetLogger before InitLogger succeeded.
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

var (
	processLogger Logger
	processErr    error
	processOnce   sync.Once
)

// InitLogger builds the process wide logger from settings. Only the first
// call has an effect, later calls return its outcome.
func InitLogger(settings *config.LoggerSettings) error {
	processOnce.Do(func() {
		processLogger, processErr = New(settings)
	})
	return processErr
}

// GetLogger returns the process wide logger.
func GetLogger() (Logger, error) {
	if processLogger == nil {
		return nil, ErrNotInitialized
	}
	return processLogger, nil
}

// New builds a Logger from settings. Every record carries the service name
// and version.
func New(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	var log Logger
	if settings.LogType == config.LogTypeFile {
		log = NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge)
	} else {
		log = NewConsoleLogger(settings.LogLevel)
	}
	return log.With("service", version.Name, "version", version.Version), nil
}
