// Package oauth implements the authorization-code + PKCE login flow
// against third-party identity providers.
//
// Each provider gets its own Client carrying static configuration and a
// transform function that maps the provider's user-info JSON to a canonical
// NormalizedUser. The flow is split in two operations mirroring the two
// HTTP round-trips:
//
//		url, err := client.BuildAuthorizationURL(w)   // issues state + verifier cookies
//		user, err := client.CompleteLogin(ctx, code, state, w, r)
//
// The state parameter is a CSRF/replay guard, the PKCE verifier binds the
// token exchange to the browser that started the flow. Either protection
// alone already stops the attack class it targets; both are carried as
// defense in depth. Both values live in short-lived HttpOnly cookies and
// are consumed exactly once by the callback.
package oauth
