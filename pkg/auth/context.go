package auth

import "context"

type contextKey struct{}

var userContextKey = contextKey{}

// WithUser returns a context carrying the authenticated user.
// The middleware resolves the user once per request and stores it here, so
// handlers never trigger a second session or database lookup.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the authenticated user stored by the middleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey).(*User)
	return user, ok && user != nil
}
