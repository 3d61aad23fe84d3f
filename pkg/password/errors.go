package password

import "errors"

var (
	// ErrHashingFailed indicates the key derivation itself failed.
	// This is an internal error, not a wrong-password condition.
	ErrHashingFailed = errors.New("password.hashing_failed")

	// ErrSaltGeneration indicates the random source failed while generating a salt.
	ErrSaltGeneration = errors.New("password.salt_generation_failed")
)
