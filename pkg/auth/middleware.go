package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avelov/authkit/pkg/session"
)

// RequireUser gates requests on a valid session. The resolved user is
// stored in the request context; unauthenticated requests are redirected
// to loginURL without invoking the next handler.
func (s *Service) RequireUser(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := s.CurrentUser(r.Context(), r)
			if err != nil {
				if !errors.Is(err, ErrUnauthenticated) {
					s.logger.ErrorContext(r.Context(), "current user lookup failed",
						slog.Any("error", err),
					)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				http.Redirect(w, r, loginURL, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RefreshSession renews the session on every request that carries one,
// sliding the expiration window so active users stay signed in. Requests
// without a session pass through untouched.
func (s *Service) RefreshSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.sessions.Renew(r.Context(), w, r); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
			s.logger.ErrorContext(r.Context(), "session renewal failed",
				slog.Any("error", err),
			)
		}
		next.ServeHTTP(w, r)
	})
}
