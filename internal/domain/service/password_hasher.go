// Package service defines interfaces for stateless collaborators the
// application layer depends on. Implementations live in pkg/helpers and
// internal/infrastructure.
package service

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
