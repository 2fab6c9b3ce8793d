package quickadd

import "errors"

// Domain-specific errors for the quickadd package.
var (
	ErrSessionNotFound    = errors.New("quick add session not found")
	ErrSessionClosed      = errors.New("quick add session closed")
	ErrExtractionInFlight = errors.New("an extraction is already in flight")
	ErrNothingToConfirm   = errors.New("no extracted schedule to confirm")
	ErrRateLimited        = errors.New("extraction rate limit exceeded")
)
