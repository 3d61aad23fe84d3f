package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avelov/authkit/pkg/cookie"
)

const idLength = 32 // random bytes per session id, hex-encoded to 64 chars

// Manager handles session lifecycle against a Store and a cookie manager.
// It is safe for concurrent use; all mutable state lives in the store.
type Manager struct {
	store   Store
	cookies *cookie.Manager
	config  Config
	logger  *slog.Logger
}

// Option configures a Manager during construction.
type Option func(*Manager)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithTTL overrides the session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithLogger sets a custom logger for the manager.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// New creates a session manager backed by the given store.
func New(store Store, cookies *cookie.Manager, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		cookies: cookies,
		config:  DefaultConfig(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create issues a new session for the payload and sets the session cookie
// on the response. Multiple concurrent sessions per user are permitted.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, payload Payload) error {
	id, err := generateID()
	if err != nil {
		return err
	}

	if err := m.store.Set(ctx, id, payload, m.config.TTL); err != nil {
		return err
	}

	m.setCookie(w, id)
	return nil
}

// Read returns the payload for the session referenced by the request
// cookie. A missing cookie or a missing/expired record yields
// ErrSessionNotFound.
func (m *Manager) Read(ctx context.Context, r *http.Request) (*Payload, error) {
	id, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	return m.store.Get(ctx, id)
}

// Renew re-reads the session and, if present, rewrites it with a fresh TTL
// and re-sets the cookie with an extended expiry. Sliding-window expiration:
// active users are never logged out mid-use. An absent session returns
// ErrSessionNotFound and sets no cookie.
func (m *Manager) Renew(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Payload, error) {
	id, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	payload, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := m.store.Set(ctx, id, *payload, m.config.TTL); err != nil {
		return nil, err
	}

	m.setCookie(w, id)
	return payload, nil
}

// Destroy deletes the store record for the current session and removes the
// cookie. Destroying an absent session is a no-op.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	id, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return nil
	}

	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}

	m.cookies.Delete(w, m.config.CookieName)
	return nil
}

func (m *Manager) setCookie(w http.ResponseWriter, id string) {
	m.cookies.Set(w, m.config.CookieName, id,
		cookie.WithMaxAge(int(m.config.TTL.Seconds())),
		cookie.WithExpires(time.Now().Add(m.config.TTL)),
	)
}

// generateID returns a hex-encoded random session identifier with at least
// 256 bits of entropy, making guessing infeasible. Collisions are not
// otherwise guarded against; their probability is negligible.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrIDGeneration, err)
	}
	return hex.EncodeToString(b), nil
}
