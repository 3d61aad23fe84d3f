package oauth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"

	"github.com/avelov/authkit/pkg/cookie"
)

// Fixed handshake cookie names shared by all providers. A browser runs at
// most one authorization attempt at a time, so the names do not need to be
// provider-scoped.
const (
	StateCookieName     = "state"
	ChallengeCookieName = "challenge"
)

const handshakeByteLength = 64 // random bytes per state and verifier, hex-encoded to 128 chars

// NormalizedUser is the canonical identity record a provider transform
// produces from raw user-info JSON.
type NormalizedUser struct {
	ID       string
	Email    string
	FullName string
	Provider string
}

// TransformFunc maps a provider's raw user-info JSON to a NormalizedUser.
// Returning an error marks the response as invalid; the caller surfaces
// ErrInvalidProviderResponse.
type TransformFunc func(raw []byte) (NormalizedUser, error)

// Config holds the static per-provider configuration.
type Config struct {
	Provider     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	AuthorizeURL string
	TokenURL     string
	UserInfoURL  string

	// RedirectBaseURL is the shared callback prefix; the provider name is
	// appended to form the redirect URI, e.g. base "https://app/api/oauth/"
	// and provider "github" yield ".../api/oauth/github".
	RedirectBaseURL string
}

// Client drives the authorization-code + PKCE flow for a single provider.
// A Client is immutable after construction and safe for concurrent use.
type Client struct {
	provider    string
	conf        *oauth2.Config
	userInfoURL string
	transform   TransformFunc
	cookies     *cookie.Manager
	httpClient  *http.Client
	attemptTTL  time.Duration
	logger      *slog.Logger
}

// Option configures a Client during construction.
type Option func(*Client)

// WithLogger sets a custom logger for the client.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithHTTPTimeout bounds the token-exchange and user-info calls.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithAttemptTTL sets the lifetime of the state and challenge cookies,
// i.e. how long a started authorization attempt stays completable.
func WithAttemptTTL(d time.Duration) Option {
	return func(c *Client) {
		c.attemptTTL = d
	}
}

// New creates a provider client from explicit configuration. Most callers
// use the NewDiscord/NewGitHub constructors instead.
func New(cfg Config, transform TransformFunc, cookies *cookie.Manager, opts ...Option) (*Client, error) {
	redirectURL, err := url.JoinPath(cfg.RedirectBaseURL, cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("build redirect url: %w", err)
	}

	c := &Client{
		provider: cfg.Provider,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       cfg.Scopes,
			RedirectURL:  redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthorizeURL,
				TokenURL: cfg.TokenURL,
				// Client credentials go in the Authorization header (HTTP
				// Basic), not the request body.
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		userInfoURL: cfg.UserInfoURL,
		transform:   transform,
		cookies:     cookies,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		attemptTTL:  10 * time.Minute,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Provider returns the provider name this client is configured for.
func (c *Client) Provider() string {
	return c.provider
}

// BuildAuthorizationURL issues a fresh state and PKCE verifier, stores both
// in short-lived HttpOnly cookies on the response, and returns the provider
// authorization URL carrying the S256 code challenge.
func (c *Client) BuildAuthorizationURL(w http.ResponseWriter) (string, error) {
	state, err := randomHex(handshakeByteLength)
	if err != nil {
		return "", err
	}
	verifier, err := randomHex(handshakeByteLength)
	if err != nil {
		return "", err
	}

	c.setHandshakeCookie(w, StateCookieName, state)
	c.setHandshakeCookie(w, ChallengeCookieName, verifier)

	return c.conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)), nil
}

// CompleteLogin validates the callback state against the state cookie,
// exchanges the authorization code using the PKCE verifier, fetches the
// provider's user info with the bearer token and normalizes it.
//
// Both handshake cookies are consumed: they are removed from the response
// whether the login succeeds or fails, so an attempt cannot be replayed.
func (c *Client) CompleteLogin(ctx context.Context, code, state string, w http.ResponseWriter, r *http.Request) (NormalizedUser, error) {
	storedState, err := c.cookies.Get(r, StateCookieName)
	if err != nil || state == "" {
		return NormalizedUser{}, ErrInvalidState
	}

	verifier, verifierErr := c.cookies.Get(r, ChallengeCookieName)

	c.cookies.Delete(w, StateCookieName)
	c.cookies.Delete(w, ChallengeCookieName)

	// The state is not secret, only a CSRF/replay guard; plain equality
	// would suffice, constant-time comparison costs nothing.
	if subtle.ConstantTimeCompare([]byte(storedState), []byte(state)) != 1 {
		return NormalizedUser{}, ErrInvalidState
	}

	if verifierErr != nil {
		return NormalizedUser{}, ErrMissingChallenge
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.conf.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		c.logger.ErrorContext(ctx, "token exchange failed",
			slog.String("provider", c.provider),
			slog.Any("error", err),
		)
		return NormalizedUser{}, errors.Join(ErrTokenExchangeFailed, err)
	}

	raw, err := c.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		c.logger.ErrorContext(ctx, "user info fetch failed",
			slog.String("provider", c.provider),
			slog.Any("error", err),
		)
		return NormalizedUser{}, errors.Join(ErrUserFetchFailed, err)
	}

	user, err := c.transform(raw)
	if err != nil {
		return NormalizedUser{}, errors.Join(ErrInvalidProviderResponse, err)
	}
	if user.ID == "" || user.Email == "" {
		return NormalizedUser{}, ErrInvalidProviderResponse
	}
	user.Provider = c.provider

	return user, nil
}

func (c *Client) fetchUserInfo(ctx context.Context, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s user endpoint returned status %d", c.provider, resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) setHandshakeCookie(w http.ResponseWriter, name, value string) {
	c.cookies.Set(w, name, value,
		cookie.WithMaxAge(int(c.attemptTTL.Seconds())),
		cookie.WithExpires(time.Now().Add(c.attemptTTL)),
	)
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrStateGeneration, err)
	}
	return hex.EncodeToString(b), nil
}
