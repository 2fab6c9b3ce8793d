package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/pkg/response"
)

// List godoc
// @Summary     List schedules
// @Description Returns the timeline ordered by start time, optionally for one date.
// @Tags        Schedule
// @Produce     json
// @Param       date query string false "Date filter (YYYY-MM-DD)"
// @Param       from query string false "Inclusive range start (YYYY-MM-DD)"
// @Param       to   query string false "Inclusive range end (YYYY-MM-DD)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a schedule
// @Description Adds a schedule entry entered directly by the user.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Schedule data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newItemResp(output))
}

// Toggle godoc
// @Summary     Toggle schedule completion
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Schedule ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ToggleCompleted(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.ToggleCompleted: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemResp(output))
}
