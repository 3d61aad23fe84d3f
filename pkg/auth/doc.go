// Package auth orchestrates credential and OAuth sign-in on top of a
// relational user store and the session manager.
//
// The service owns no protocol logic itself: password hashing lives in
// pkg/password, the OAuth handshake in pkg/oauth and session issuance in
// pkg/session. What this package adds is the account semantics: one user
// row per email, idempotent provider links, and the current-user query
// that request gating is built on.
package auth
