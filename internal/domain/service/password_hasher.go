// Package service declares the ports the patrol usecases call out through.
package service

// PasswordHasher hashes and verifies guard PINs and admin passwords.
type PasswordHasher interface {
	Hash(secret string) (string, error)

	// Check reports whether secret matches hash. Malformed hashes never match.
	Check(secret, hash string) bool
}
