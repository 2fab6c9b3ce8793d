package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/pkg/response"
)

// Open godoc
// @Summary     Open a quick-add session
// @Tags        QuickAdd
// @Produce     json
// @Success     201 {object} sessionResp
// @Router      /api/v1/quick-add/sessions [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Open(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Open: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newSessionResp(s))
}

// Get godoc
// @Summary     Get a quick-add session
// @Tags        QuickAdd
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/quick-add/sessions/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.Get(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(s))
}

// Extract godoc
// @Summary     Extract a schedule from free text
// @Description Runs one extraction for the session. On failure the session keeps the text and records the reason.
// @Tags        QuickAdd
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body extractReq true "Free text and optional reference time"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Empty input"
// @Failure     409 {object} response.Resp "Extraction already in flight"
// @Failure     422 {object} response.Resp "Malformed response or invalid field"
// @Failure     503 {object} response.Resp "Extraction service unavailable"
// @Router      /api/v1/quick-add/sessions/{id}/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, now, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.Submit(ctx, req.toInput(id, now))
	if err != nil {
		h.l.Warnf(ctx, "uc.Submit: session=%s: %v", id, err)
		var data map[string]interface{}
		if s.ID != "" {
			data = map[string]interface{}{"session": h.newSessionResp(s)}
		}
		response.Error(c, h.mapError(err), data)
		return
	}

	response.OK(c, h.newSessionResp(s))
}

// Confirm godoc
// @Summary     Confirm the extracted schedule
// @Tags        QuickAdd
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     201 {object} confirmResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Nothing to confirm"
// @Router      /api/v1/quick-add/sessions/{id}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Confirm(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Confirm: session=%s: %v", id, err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newConfirmResp(out))
}

// Close godoc
// @Summary     Close a quick-add session
// @Description Discards the session. A result still in flight is dropped.
// @Tags        QuickAdd
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/quick-add/sessions/{id} [DELETE]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Close(ctx, id); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
