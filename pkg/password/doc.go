// Package password derives and verifies salted password hashes using scrypt.
//
// Hashes are hex-encoded 64-byte scrypt outputs keyed by a per-user random
// salt. Verification recomputes the hash and compares in constant time, so a
// mismatch never leaks timing information about the stored value.
//
// Usage:
//
//	hasher := password.New()
//	salt, err := hasher.GenerateSalt()
//	hash, err := hasher.Hash("secret", salt)
//	ok := hasher.Verify("secret", salt, hash)
package password
