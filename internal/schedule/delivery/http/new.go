package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/internal/schedule"
	"focus-dashboard/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Toggle(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
