package auth

import "errors"

var (
	// ErrEmailTaken indicates a registration attempt for an email that
	// already has a user row.
	ErrEmailTaken = errors.New("auth.email_taken")

	// ErrUserNotFound indicates no user row matched the lookup.
	ErrUserNotFound = errors.New("auth.user_not_found")

	// ErrNoPasswordSet indicates a credentials login against an OAuth-only
	// account that never set a password.
	ErrNoPasswordSet = errors.New("auth.no_password_set")

	// ErrInvalidCredentials indicates the password did not match.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")

	// ErrUnauthenticated indicates no valid session, or a session whose
	// user row no longer exists. It is the "not signed in" answer, not a
	// failure.
	ErrUnauthenticated = errors.New("auth.unauthenticated")
)
