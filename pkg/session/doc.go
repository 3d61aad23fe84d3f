// Package session issues, validates, renews and revokes server-side
// sessions bound to a browser cookie.
//
// A session is an opaque random identifier mapped to a small identity
// snapshot in an external key-value store. The cookie carries only the
// identifier; all state lives server-side with a fixed TTL. Renewal
// rewrites the record and cookie with a fresh TTL, giving active users
// sliding-window expiration.
//
// The Manager takes the response writer and request explicitly wherever it
// reads or writes cookies, so every cookie side effect is part of the
// function's contract and testable with httptest.
package session
