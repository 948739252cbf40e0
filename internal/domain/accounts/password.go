package accounts

import (
	"slices"
	"unicode/utf8"

	"github.com/wisskirchenj/account-reactive/internal/pkg/apperrors"
)

// Password policy
const (
	MinPasswordLength = 12
	BcryptCost        = 7
	LoginFailedLimit  = 5
)

// breachedPasswords are known to be leaked and rejected on signup, on
// password change and on authentication.
var breachedPasswords = []string{
	"PasswordForJanuary", "PasswordForFebruary", "PasswordForMarch", "PasswordForApril",
	"PasswordForMay", "PasswordForJune", "PasswordForJuly", "PasswordForAugust",
	"PasswordForSeptember", "PasswordForOctober", "PasswordForNovember", "PasswordForDecember",
}

// PasswordIsBreached reports whether password is in the breached set.
func PasswordIsBreached(password string) bool {
	return slices.Contains(breachedPasswords, password)
}

// CheckPassword applies the password policy to a new password. Length is
// counted in characters, not bytes.
func CheckPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperrors.BadRequest(MsgPasswordTooShort)
	}
	if PasswordIsBreached(password) {
		return apperrors.BadRequest(MsgPasswordBreached)
	}
	return nil
}
