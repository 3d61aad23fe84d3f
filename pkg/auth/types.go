package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/avelov/authkit/pkg/session"
)

// Role is a user's access level. It is carried through sessions but not
// enforced here; authorization is the caller's concern.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an identity record owned by the relational store.
// PasswordHash and Salt are empty for OAuth-only accounts.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	Role         Role
	PasswordHash string
	Salt         string
}

// SessionPayload returns the identity snapshot stored with a new session.
func (u *User) SessionPayload() session.Payload {
	return session.Payload{
		UserID: u.ID.String(),
		Email:  u.Email,
		Role:   session.Role(u.Role),
	}
}

// Storage defines the relational persistence required by the service.
// Implementations report missing rows with ErrUserNotFound.
type Storage interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	CreateUser(ctx context.Context, user *User) error

	// LinkIdentity associates a (provider, providerAccountID) pair with a
	// user. Linking an already-linked pair is a no-op, so a provider
	// account can safely retry.
	LinkIdentity(ctx context.Context, provider, providerAccountID string, userID uuid.UUID) error
}
