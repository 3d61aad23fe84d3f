package oauth

import "errors"

var (
	// ErrInvalidState indicates the callback state did not match the value
	// issued at the start of the flow, or no state cookie was present.
	ErrInvalidState = errors.New("oauth.invalid_state")

	// ErrMissingChallenge indicates the PKCE verifier cookie was absent on callback.
	ErrMissingChallenge = errors.New("oauth.missing_challenge")

	// ErrTokenExchangeFailed indicates the authorization code could not be
	// exchanged for an access token. Codes are single-use, so the flow is
	// never retried; the user restarts from the beginning.
	ErrTokenExchangeFailed = errors.New("oauth.token_exchange_failed")

	// ErrUserFetchFailed indicates the user-info request failed.
	ErrUserFetchFailed = errors.New("oauth.user_fetch_failed")

	// ErrInvalidProviderResponse indicates the provider returned user info
	// that failed the provider transform's validation.
	ErrInvalidProviderResponse = errors.New("oauth.invalid_provider_response")

	// ErrStateGeneration indicates the random source failed while issuing
	// handshake values.
	ErrStateGeneration = errors.New("oauth.state_generation_failed")
)
