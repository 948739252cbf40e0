package testutil

import (
	"strings"
	"sync"
	"testing"

	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
)

// testWriter forwards log lines to t.Log until the test has finished.
type testWriter struct {
	t    *testing.T
	mu   sync.Mutex
	done bool
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.done {
		w.t.Log(strings.TrimRight(string(p), "\n"))
	}
	return len(p), nil
}

// SetupTestLogger returns a logger whose output shows up in the test log.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	w := &testWriter{t: t}
	t.Cleanup(func() {
		w.mu.Lock()
		w.done = true
		w.mu.Unlock()
	})
	return logger.NewWriterLogger(w, config.LogLevelInfo)
}
