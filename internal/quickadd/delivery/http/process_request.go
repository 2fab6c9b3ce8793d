package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

// processExtractReq binds the extract body and resolves the reference time.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, time.Time, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, err
	}

	if req.Now == "" {
		return req, h.now().In(h.loc), nil
	}
	now, err := time.Parse(time.RFC3339, req.Now)
	if err != nil {
		return req, time.Time{}, fmt.Errorf("now must be RFC3339: %w", err)
	}
	return req, now, nil
}
