package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [CheckPassword] when the password does
// not match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns a salted bcrypt hash of password.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [bcrypt.DefaultCost]. Two calls with the same password return different
// hashes; both verify with [CheckPassword].
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares password with a hash produced by [HashPassword].
//
// Returns nil on a match, [ErrPasswordMismatch] when the password is wrong
// and a wrapped bcrypt error when hash is not a valid bcrypt hash.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error checking password: %w", err)
	}
}
