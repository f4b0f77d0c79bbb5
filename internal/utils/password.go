package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrSecretKeyTooShort = errors.New("secret key must be at least 16 characters long")

// ValidateSecretKey rejects session keys too short to be worth encrypting with.
func ValidateSecretKey(key string) error {
	if len(key) < 16 {
		return ErrSecretKeyTooShort
	}
	return nil
}

// HashPassword hashes the admin password so the plaintext never outlives startup.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a candidate against a bcrypt hash in constant time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
