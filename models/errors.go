package models

import "errors"

// Error taxonomy shared across services and controllers. Services wrap these
// with context; controllers map them to status codes with errors.Is.
var (
	// ErrInvalidInput: malformed caller data. Never retried.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated: no identity on the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrGenerationFailed: provider returned an unparseable or non-conforming
	// payload. The caller may retry by re-invoking generate.
	ErrGenerationFailed = errors.New("plan generation failed")
	// ErrMissingEstimate: meal generation requested before any energy
	// estimate exists for the user.
	ErrMissingEstimate = errors.New("no energy estimate on record")
	// ErrProviderUnavailable: network/timeout/quota failure talking to the
	// generative provider, after the single retry.
	ErrProviderUnavailable = errors.New("plan provider unavailable")
)
