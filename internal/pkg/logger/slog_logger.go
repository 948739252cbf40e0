package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
)

// LevelCritical is the level of Fatal and Panic records.
const LevelCritical = slog.LevelError + 4

var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: LevelCritical,
}

// parseLevel maps a configured level name, unknown names log at info.
func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

func handlerOptions(level string) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if l, ok := a.Value.Any().(slog.Level); ok && l >= LevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}
}

// SlogLogger is an implementation of Logger backed by log/slog.
type SlogLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a text logger on stdout.
func NewConsoleLogger(level string) Logger {
	return NewWriterLogger(os.Stdout, level)
}

// NewWriterLogger creates a text logger on w.
func NewWriterLogger(w io.Writer, level string) Logger {
	return &SlogLogger{logger: slog.New(slog.NewTextHandler(w, handlerOptions(level)))}
}

// NewFileLogger creates a JSON logger on a rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	return &SlogLogger{logger: slog.New(slog.NewJSONHandler(writer, handlerOptions(level)))}
}

func (l *SlogLogger) Debug(args ...interface{}) {
	l.logger.Debug(fmt.Sprint(args...))
}

func (l *SlogLogger) Info(args ...interface{}) {
	l.logger.Info(fmt.Sprint(args...))
}

func (l *SlogLogger) Warn(args ...interface{}) {
	l.logger.Warn(fmt.Sprint(args...))
}

func (l *SlogLogger) Error(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
}

// Fatal logs at critical level and exits.
func (l *SlogLogger) Fatal(args ...interface{}) {
	l.logger.Log(context.Background(), LevelCritical, fmt.Sprint(args...))
	os.Exit(1)
}

// Panic logs at critical level and panics with the message.
func (l *SlogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Log(context.Background(), LevelCritical, msg)
	panic(msg)
}

// With returns a child logger carrying the given attributes.
func (l *SlogLogger) With(keyValues ...interface{}) Logger {
	return &SlogLogger{logger: l.logger.With(keyValues...)}
}
