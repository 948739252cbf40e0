//go:build unit
// +build unit

package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSecurityEvent(t *testing.T) {
	event := NewSecurityEvent(ActionCreateUser, AnonymousSubject, "max@acme.com", "/api/auth/signup")

	assert.Equal(t, ActionCreateUser, event.Action)
	assert.Equal(t, AnonymousSubject, event.Subject)
	assert.Equal(t, "max@acme.com", event.Object)
	assert.Equal(t, "/api/auth/signup", event.Path)
	assert.Equal(t, time.Now().Format(DateLayout), event.Date.Format(DateLayout))
	assert.Zero(t, event.Date.Hour())
}
