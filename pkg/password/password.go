package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/scrypt"
)

const (
	defaultSaltLength = 24 // random bytes per salt, hex-encoded to 48 chars
	defaultKeyLength  = 64 // derived key bytes, hex-encoded to 128 chars

	// Interactive-login scrypt parameters (RFC 7914 recommendations).
	defaultN = 1 << 15
	defaultR = 8
	defaultP = 1
)

// Hasher derives and verifies scrypt password hashes.
// The zero cost parameters are safe for interactive logins; tests may lower
// them via options to keep suites fast.
type Hasher struct {
	n, r, p    int
	keyLength  int
	saltLength int
}

// Option configures a Hasher during construction.
type Option func(*Hasher)

// WithCost overrides the scrypt cost parameters.
func WithCost(n, r, p int) Option {
	return func(h *Hasher) {
		h.n, h.r, h.p = n, r, p
	}
}

// WithSaltLength overrides the number of random bytes per generated salt.
func WithSaltLength(n int) Option {
	return func(h *Hasher) {
		h.saltLength = n
	}
}

// New creates a Hasher with production defaults.
func New(opts ...Option) *Hasher {
	h := &Hasher{
		n:          defaultN,
		r:          defaultR,
		p:          defaultP,
		keyLength:  defaultKeyLength,
		saltLength: defaultSaltLength,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GenerateSalt returns a new hex-encoded random salt.
func (h *Hasher) GenerateSalt() (string, error) {
	b := make([]byte, h.saltLength)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrSaltGeneration, err)
	}
	return hex.EncodeToString(b), nil
}

// Hash derives a hex-encoded scrypt hash of password under salt.
// The same (password, salt) pair always yields the same hash.
func (h *Hasher) Hash(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), h.n, h.r, h.p, h.keyLength)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return hex.EncodeToString(key), nil
}

// Verify reports whether password hashes to expectedHash under salt.
// Comparison is constant-time. Any derivation or decoding failure is
// reported as a plain mismatch, never an error.
func (h *Hasher) Verify(password, salt, expectedHash string) bool {
	expected, err := hex.DecodeString(expectedHash)
	if err != nil {
		return false
	}

	key, err := scrypt.Key([]byte(password), []byte(salt), h.n, h.r, h.p, h.keyLength)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, expected) == 1
}
