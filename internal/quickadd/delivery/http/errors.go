package http

import (
	"context"
	"errors"
	"net/http"

	"focus-dashboard/internal/quickadd"
	"focus-dashboard/internal/schedule"
	pkgErrors "focus-dashboard/pkg/errors"
)

// Application codes for extraction failures, so clients can tell
// "try again" apart from "rephrase your input".
const (
	codeEmptyInput         = 40001
	codeServiceUnavailable = 50301
	codeMalformedResponse  = 42201
	codeInvalidFieldValue  = 42202
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if reason, ok := schedule.ReasonOf(err); ok {
		switch reason {
		case schedule.ReasonEmptyInput:
			return pkgErrors.NewHTTPErrorWithStatus(codeEmptyInput, "text is empty", http.StatusBadRequest)
		case schedule.ReasonServiceUnavailable:
			return pkgErrors.NewHTTPErrorWithStatus(codeServiceUnavailable, "extraction service is unavailable, try again", http.StatusServiceUnavailable)
		case schedule.ReasonMalformedResponse:
			return pkgErrors.NewHTTPErrorWithStatus(codeMalformedResponse, "could not understand the input, try rephrasing", http.StatusUnprocessableEntity)
		case schedule.ReasonInvalidFieldValue:
			return pkgErrors.NewHTTPErrorWithStatus(codeInvalidFieldValue, "could not understand the input, try rephrasing", http.StatusUnprocessableEntity)
		}
	}

	switch {
	case errors.Is(err, quickadd.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "quick add session not found")
	case errors.Is(err, quickadd.ErrSessionClosed):
		return pkgErrors.NewHTTPError(http.StatusGone, "quick add session closed")
	case errors.Is(err, quickadd.ErrExtractionInFlight):
		return pkgErrors.NewHTTPError(http.StatusConflict, "an extraction is already in progress")
	case errors.Is(err, quickadd.ErrNothingToConfirm):
		return pkgErrors.NewHTTPError(http.StatusConflict, "nothing to confirm")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return pkgErrors.NewHTTPError(http.StatusAccepted, "extraction still running, poll the session")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
