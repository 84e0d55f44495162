// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// Implementations mix a server-held secret into the hash, so a leaked table alone
// is not enough to run an offline attack.
type PasswordHasher interface {
	// Hash generates a salted, keyed hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
