package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"focus-dashboard/internal/quickadd"
	"focus-dashboard/pkg/log"
)

// Handler is the public interface for the quick-add HTTP delivery layer.
type Handler interface {
	Open(c *gin.Context)
	Get(c *gin.Context)
	Extract(c *gin.Context)
	Confirm(c *gin.Context)
	Close(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  quickadd.UseCase
	loc *time.Location
	now func() time.Time
}

// New creates a new HTTP handler for quick-add sessions.
// loc is the dashboard timezone used when the client sends no reference time.
func New(l log.Logger, uc quickadd.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.Local
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
		now: time.Now,
	}
}
