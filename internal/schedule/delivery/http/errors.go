package http

import (
	"errors"
	"net/http"

	"focus-dashboard/internal/schedule"
	pkgErrors "focus-dashboard/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "schedule not found")
	case errors.Is(err, schedule.ErrInvalidSchedule):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
