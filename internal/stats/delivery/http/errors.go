package http

import (
	"errors"
	"net/http"

	"focus-dashboard/internal/stats"
	pkgErrors "focus-dashboard/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stats.ErrInvalidDate), errors.Is(err, stats.ErrInvalidRange):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
