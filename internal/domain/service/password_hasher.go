// Package service declares the stateless domain services used by the use cases.
// Implementations live under internal/infra.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes and verifies them.
type PasswordHasher interface {
	// Hash returns an opaque hash of the trimmed password. It fails with an
	// invalid-input error when the password is too short or too long.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A malformed hash yields false.
	Compare(password, hash string) bool
}
