package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/avelov/authkit/pkg/logger"
	"github.com/avelov/authkit/pkg/oauth"
	"github.com/avelov/authkit/pkg/password"
	"github.com/avelov/authkit/pkg/session"
	"github.com/avelov/authkit/pkg/validator"
)

// Password length bounds for registration and login input.
const (
	minPasswordLength = 6
	maxPasswordLength = 18
)

// Service implements registration, login and the current-user query.
// It is safe for concurrent use.
type Service struct {
	storage  Storage
	hasher   *password.Hasher
	sessions *session.Manager
	logger   *slog.Logger
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// New creates an authentication service.
func New(storage Storage, hasher *password.Hasher, sessions *session.Manager, opts ...Option) *Service {
	s := &Service{
		storage:  storage,
		hasher:   hasher,
		sessions: sessions,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterWithCredentials creates a user with a salted password hash.
// It does not create a session; callers compose registration with
// StartSession explicitly.
func (s *Service) RegisterWithCredentials(ctx context.Context, email, pass, fullName string) (*User, error) {
	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.LengthBetween("password", pass, minPasswordLength, maxPasswordLength),
		validator.Required("fullName", fullName),
	); err != nil {
		return nil, err
	}

	_, err := s.storage.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(pass, salt)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		Role:         RoleUser,
		PasswordHash: hash,
		Salt:         salt,
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(user.ID.String()),
		logger.Component("auth"),
	)

	return user, nil
}

// LoginWithCredentials verifies email and password and returns the user.
func (s *Service) LoginWithCredentials(ctx context.Context, email, pass string) (*User, error) {
	if err := validator.Apply(
		validator.ValidEmail("email", email),
		validator.LengthBetween("password", pass, minPasswordLength, maxPasswordLength),
	); err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.PasswordHash == "" || user.Salt == "" {
		return nil, ErrNoPasswordSet
	}

	if !s.hasher.Verify(pass, user.Salt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// LoginWithOAuth resolves a normalized provider identity to a local user.
// The first login for an unseen email creates a passwordless user; a known
// email links the provider account to the existing user. Linking is
// idempotent, so replaying a callback cannot produce duplicates.
func (s *Service) LoginWithOAuth(ctx context.Context, identity oauth.NormalizedUser) (*User, error) {
	user, err := s.storage.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("get user: %w", err)
		}

		user = &User{
			ID:       uuid.New(),
			Email:    identity.Email,
			FullName: identity.FullName,
			Role:     RoleUser,
		}
		if err := s.storage.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}

		s.logger.InfoContext(ctx, "user created from oauth login",
			logger.UserID(user.ID.String()),
			logger.Provider(identity.Provider),
			logger.Component("auth"),
		)
	}

	if err := s.storage.LinkIdentity(ctx, identity.Provider, identity.ID, user.ID); err != nil {
		return nil, fmt.Errorf("link %s identity: %w", identity.Provider, err)
	}

	return user, nil
}

// StartSession issues a session for the user and sets the cookie on w.
func (s *Service) StartSession(ctx context.Context, w http.ResponseWriter, user *User) error {
	return s.sessions.Create(ctx, w, user.SessionPayload())
}

// Logout destroys the current session, if any.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return s.sessions.Destroy(ctx, w, r)
}

// CurrentUser resolves the request's session to a full user row.
// A missing or expired session, or a session referencing a deleted user,
// yields ErrUnauthenticated rather than a failure. A user already resolved
// for this request (see RequireUser) is returned from the context without
// another store round trip.
func (s *Service) CurrentUser(ctx context.Context, r *http.Request) (*User, error) {
	if user, ok := UserFromContext(ctx); ok {
		return user, nil
	}

	payload, err := s.sessions.Read(ctx, r)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	id, err := uuid.Parse(payload.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Stale session referencing a deleted user.
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}
