package session

import "errors"

var (
	// ErrSessionNotFound indicates no session cookie was presented or the
	// stored record is missing or expired. Callers treat this as "not
	// authenticated", never as a failure.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrIDGeneration indicates the random source failed while generating
	// a session identifier.
	ErrIDGeneration = errors.New("session.id_generation_failed")

	// ErrStoreUnavailable indicates the backing key-value store could not
	// be reached.
	ErrStoreUnavailable = errors.New("session.store_unavailable")
)
