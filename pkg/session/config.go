package session

import "time"

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie (default: "session").
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`

	// TTL is the session lifetime from creation or last renewal.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

// DefaultConfig returns the default session configuration: a cookie named
// "session" and a 7-day lifetime.
func DefaultConfig() Config {
	return Config{
		CookieName: "session",
		TTL:        7 * 24 * time.Hour,
	}
}
