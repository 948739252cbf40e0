// Package cryptography provides the password hashing used to store and
// verify login credentials.
package cryptography

import (
	"errors"
	"fmt"

	"github.com/wisskirchenj/account-reactive/internal/domain/accounts"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt takes into account.
const maxPasswordBytes = 72

// bcryptEncoder struct that implements the PasswordEncoder interface
type bcryptEncoder struct {
	cost   int
	logger logger.Logger
}

// NewBcryptEncoder creates and returns a new bcrypt based PasswordEncoder with the given cost
func NewBcryptEncoder(cost int, logger logger.Logger) (accounts.PasswordEncoder, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptEncoder{
		cost:   cost,
		logger: logger,
	}, nil
}

// Encode hashes password. Only the first 72 bytes are significant, both here
// and in Matches.
func (e *bcryptEncoder) Encode(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(significant(password), e.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Matches reports whether password belongs to hash.
func (e *bcryptEncoder) Matches(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), significant(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		e.logger.Warn("Unable to compare password hash: ", err)
	}
	return err == nil
}

func significant(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		return b[:maxPasswordBytes]
	}
	return b
}
