package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/internal/stats"
	"focus-dashboard/pkg/response"
)

// Weekly godoc
// @Summary     Weekly summary
// @Description Totals for the Monday-Sunday week containing the date (default today).
// @Tags        Stats
// @Produce     json
// @Param       date query string false "Reference date (YYYY-MM-DD)"
// @Success     200 {object} weeklyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/weekly [GET]
func (h *handler) Weekly(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Weekly(ctx, stats.WeeklyInput{ReferenceDate: c.Query("date")})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, toWeeklyResp(out))
}

// Categories godoc
// @Summary     Category distribution
// @Description Per-tag counts and minutes over an inclusive date range (default this week).
// @Tags        Stats
// @Produce     json
// @Param       from query string false "From date (YYYY-MM-DD)"
// @Param       to   query string false "To date (YYYY-MM-DD)"
// @Success     200 {object} categoriesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/stats/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Categories(ctx, stats.CategoriesInput{From: c.Query("from"), To: c.Query("to")})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, toCategoriesResp(out))
}
