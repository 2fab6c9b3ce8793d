package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "focus-dashboard/pkg/errors"
	"focus-dashboard/pkg/response"
)

// Get godoc
// @Summary     Settings
// @Description Non-secret runtime settings. The API key is reported only as configured or not.
// @Tags        Settings
// @Produce     json
// @Success     200 {object} settingsResp
// @Router      /api/v1/settings [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "settings.http.Get: %v", err)
		response.Error(c, pkgErrors.ErrInternalServerError, nil)
		return
	}

	response.OK(c, toSettingsResp(out))
}
