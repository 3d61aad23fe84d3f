// Package account wires the authentication subsystem into HTTP routes:
// credential login and registration, logout, and the OAuth redirect and
// callback pair for each configured provider. Handlers stay thin; all
// protocol and account logic lives in pkg/auth, pkg/oauth and pkg/session.
package account

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/avelov/authkit/pkg/auth"
	"github.com/avelov/authkit/pkg/logger"
	"github.com/avelov/authkit/pkg/oauth"
	"github.com/avelov/authkit/pkg/validator"
)

// Router serves the account routes for a set of OAuth providers.
type Router struct {
	svc       *auth.Service
	providers map[string]*oauth.Client
	logger    *slog.Logger
}

// Option configures a Router during construction.
type Option func(*Router)

// WithLogger sets a custom logger for the router.
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// New creates the account router. Providers are dispatched by their tag in
// the URL, so only configured providers are reachable.
func New(svc *auth.Service, providers []*oauth.Client, opts ...Option) *Router {
	byName := make(map[string]*oauth.Client, len(providers))
	for _, p := range providers {
		byName[p.Provider()] = p
	}

	r := &Router{
		svc:       svc,
		providers: byName,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handler returns the mountable account routes.
func (ro *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", ro.login)
	r.Post("/register", ro.register)
	r.Post("/logout", ro.logout)

	r.Get("/oauth/{provider}/start", ro.oauthStart)
	r.Get("/oauth/{provider}", ro.oauthCallback)

	return r
}

func (ro *Router) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/login", "invalid form submission")
		return
	}

	user, err := ro.svc.LoginWithCredentials(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		redirectWithError(w, r, "/login", userMessage(err))
		return
	}

	if err := ro.svc.StartSession(r.Context(), w, user); err != nil {
		ro.logger.ErrorContext(r.Context(), "failed to start session",
			logger.UserID(user.ID.String()),
			logger.Error(err),
		)
		redirectWithError(w, r, "/login", "something went wrong")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ro *Router) register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/register", "invalid form submission")
		return
	}

	user, err := ro.svc.RegisterWithCredentials(r.Context(),
		r.PostFormValue("email"),
		r.PostFormValue("password"),
		r.PostFormValue("fullName"),
	)
	if err != nil {
		redirectWithError(w, r, "/register", userMessage(err))
		return
	}

	if err := ro.svc.StartSession(r.Context(), w, user); err != nil {
		ro.logger.ErrorContext(r.Context(), "failed to start session",
			logger.UserID(user.ID.String()),
			logger.Error(err),
		)
		redirectWithError(w, r, "/register", "something went wrong")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (ro *Router) logout(w http.ResponseWriter, r *http.Request) {
	if err := ro.svc.Logout(r.Context(), w, r); err != nil {
		ro.logger.ErrorContext(r.Context(), "logout failed", logger.Error(err))
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (ro *Router) oauthStart(w http.ResponseWriter, r *http.Request) {
	client, ok := ro.providers[chi.URLParam(r, "provider")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	authURL, err := client.BuildAuthorizationURL(w)
	if err != nil {
		ro.logger.ErrorContext(r.Context(), "failed to build authorization url",
			logger.Provider(client.Provider()),
			logger.Error(err),
		)
		redirectWithError(w, r, "/login", "something went wrong")
		return
	}

	http.Redirect(w, r, authURL, http.StatusSeeOther)
}

func (ro *Router) oauthCallback(w http.ResponseWriter, r *http.Request) {
	client, ok := ro.providers[chi.URLParam(r, "provider")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query()
	identity, err := client.CompleteLogin(r.Context(), query.Get("code"), query.Get("state"), w, r)
	if err != nil {
		ro.logger.WarnContext(r.Context(), "oauth login failed",
			logger.Provider(client.Provider()),
			logger.Error(err),
		)
		redirectWithError(w, r, "/login", userMessage(err))
		return
	}

	user, err := ro.svc.LoginWithOAuth(r.Context(), identity)
	if err != nil {
		ro.logger.ErrorContext(r.Context(), "oauth account resolution failed",
			logger.Provider(client.Provider()),
			logger.Error(err),
		)
		redirectWithError(w, r, "/login", "unable to connect")
		return
	}

	if err := ro.svc.StartSession(r.Context(), w, user); err != nil {
		ro.logger.ErrorContext(r.Context(), "failed to start session",
			logger.UserID(user.ID.String()),
			logger.Error(err),
		)
		redirectWithError(w, r, "/login", "something went wrong")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func redirectWithError(w http.ResponseWriter, r *http.Request, target, message string) {
	http.Redirect(w, r, target+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}

// userMessage translates typed errors to user-facing text. Only the first
// validation issue is surfaced to avoid leaking schema internals.
func userMessage(err error) string {
	if ve := validator.ExtractValidationErrors(err); len(ve) > 0 {
		return ve[0].Field + " " + ve[0].Message
	}

	switch {
	case errors.Is(err, auth.ErrEmailTaken):
		return "user already exists"
	case errors.Is(err, auth.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, auth.ErrNoPasswordSet):
		return "account has no password, sign in with your provider"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "invalid credentials"
	case errors.Is(err, oauth.ErrInvalidState), errors.Is(err, oauth.ErrMissingChallenge):
		return "login attempt expired, please try again"
	case errors.Is(err, oauth.ErrTokenExchangeFailed),
		errors.Is(err, oauth.ErrUserFetchFailed),
		errors.Is(err, oauth.ErrInvalidProviderResponse):
		return "unable to connect"
	default:
		return "something went wrong"
	}
}
