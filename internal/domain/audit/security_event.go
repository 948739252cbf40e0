// Package audit records security relevant events: account lifecycle,
// administrative changes and authentication failures.
package audit

import "time"

// Security event actions
const (
	ActionCreateUser     = "CREATE_USER"
	ActionChangePassword = "CHANGE_PASSWORD"
	ActionAccessDenied   = "ACCESS_DENIED"
	ActionLoginFailed    = "LOGIN_FAILED"
	ActionGrantRole      = "GRANT_ROLE"
	ActionRemoveRole     = "REMOVE_ROLE"
	ActionLockUser       = "LOCK_USER"
	ActionUnlockUser     = "UNLOCK_USER"
	ActionDeleteUser     = "DELETE_USER"
	ActionBruteForce     = "BRUTE_FORCE"
)

// AnonymousSubject is the subject of events caused by unauthenticated requests.
const AnonymousSubject = "Anonymous"

// DateLayout is the calendar date format of SecurityEvent.Date.
const DateLayout = time.DateOnly

// SecurityEvent is one entry of the audit log.
type SecurityEvent struct {
	ID      int64
	Date    time.Time
	Action  string
	Subject string
	Object  string
	Path    string
}

// NewSecurityEvent creates an event dated today.
func NewSecurityEvent(action, subject, object, path string) *SecurityEvent {
	now := time.Now()
	return &SecurityEvent{
		Date:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Action:  action,
		Subject: subject,
		Object:  object,
		Path:    path,
	}
}
