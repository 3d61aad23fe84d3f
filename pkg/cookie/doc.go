// Package cookie provides a small cookie manager with secure defaults.
//
// All cookies written through a Manager are HttpOnly, SameSite=Lax and
// scoped to "/" unless overridden per call. The manager exists so that
// functions which set cookies receive the effect as an explicit
// collaborator instead of reaching into ambient request state.
package cookie
