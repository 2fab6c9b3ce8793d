package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrNoProvidersConfigured indicates no provider could be built from config
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrInvalidResponse indicates the provider envelope could not be decoded
	ErrInvalidResponse = errors.New("invalid provider response")

	// ErrEmptyResponse indicates the provider returned no candidate text
	ErrEmptyResponse = errors.New("empty provider response")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
