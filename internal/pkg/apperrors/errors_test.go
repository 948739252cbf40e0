//go:build unit
// +build unit

package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
	}{
		{"bad request", BadRequest("User exist!"), http.StatusBadRequest},
		{"not found", NotFound("User not found!"), http.StatusNotFound},
		{"unauthorized", Unauthorized("Invalid Credentials"), http.StatusUnauthorized},
		{"forbidden", Forbidden("Access Denied!"), http.StatusForbidden},
		{"too many requests", TooManyRequests("Too Many Requests"), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.err.Message, tt.err.Error())
		})
	}
}

func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("change role: %w", NotFound("Role not found!"))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Role not found!", appErr.Message)
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(errors.New("connection refused"))
	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("connection refused")))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("constraint violated")
	err := &Error{Status: http.StatusBadRequest, Message: "User exist!", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "User exist!: constraint violated", err.Error())
}
