// Package service declares the infrastructure the usecases depend on: hashing, tokens,
// object storage, catalog events and QR codes.
package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with different parameters than the
	// hasher currently uses. Login upgrades such hashes while the plaintext is at hand.
	NeedsRehash(hash string) bool
}
