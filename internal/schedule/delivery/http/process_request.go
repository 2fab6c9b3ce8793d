package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds and validates the create schedule request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
