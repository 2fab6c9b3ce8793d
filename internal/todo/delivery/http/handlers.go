package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Returns todos newest first with the pending count.
// @Tags        Todo
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newListResp(out))
}

// Create godoc
// @Summary     Create a todo
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Todo data"
// @Success     201 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, itemResp{Todo: newTodoResp(t)})
}

// Toggle godoc
// @Summary     Toggle todo completion
// @Tags        Todo
// @Produce     json
// @Param       id path string true "Todo ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Toggle(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, itemResp{Todo: newTodoResp(t)})
}
