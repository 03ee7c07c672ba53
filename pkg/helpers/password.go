package helpers

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/saffco/skincare-backend/internal/domain/service"
)

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// BcryptHasher adapts the bcrypt helpers to service.PasswordHasher.
type BcryptHasher struct{}

func NewBcryptHasher() service.PasswordHasher { return BcryptHasher{} }

func (BcryptHasher) Hash(password string) (string, error) { return HashPassword(password) }

func (BcryptHasher) Check(password, hash string) bool { return CompareHashAndPassword(hash, password) }
