package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrDecodeResponse indicates a 200 response whose body is not a valid generateContent envelope.
	ErrDecodeResponse = errors.New("gemini: failed to decode response")

	// ErrMissingAPIKey indicates the client was configured without a credential.
	ErrMissingAPIKey = errors.New("gemini: APIKey is required")
)

// APIError is returned for non-200 responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}
