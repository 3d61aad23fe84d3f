package authpg

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelov/authkit/pkg/auth"
	"github.com/avelov/authkit/pkg/pg"
)

// Storage persists users and linked identities in PostgreSQL.
type Storage struct {
	pool *pgxpool.Pool
}

// New creates a PostgreSQL-backed auth storage.
func New(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

const selectUser = `
SELECT id, email, full_name, role, COALESCE(password, ''), COALESCE(salt, '')
FROM users
`

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx, selectUser+"WHERE email = $1", email))
}

func (s *Storage) GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	return s.scanUser(s.pool.QueryRow(ctx, selectUser+"WHERE id = $1", id))
}

func (s *Storage) CreateUser(ctx context.Context, user *auth.User) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO users (id, email, password, salt, full_name, role)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)`,
		user.ID, user.Email, user.PasswordHash, user.Salt, user.FullName, string(user.Role),
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Storage) LinkIdentity(ctx context.Context, provider, providerAccountID string, userID uuid.UUID) error {
	// ON CONFLICT DO NOTHING keeps the operation idempotent for replayed
	// provider callbacks.
	_, err := s.pool.Exec(ctx, `
		INSERT INTO user_oauth_accounts (provider, provider_account_id, user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider_account_id, provider) DO NOTHING`,
		provider, providerAccountID, userID,
	)
	if err != nil {
		return fmt.Errorf("insert oauth link: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanUser(row rowScanner) (*auth.User, error) {
	var (
		user auth.User
		role string
	)
	if err := row.Scan(&user.ID, &user.Email, &user.FullName, &role, &user.PasswordHash, &user.Salt); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	user.Role = auth.Role(role)
	return &user, nil
}

var _ auth.Storage = (*Storage)(nil)
