package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/internal/settings"
	"focus-dashboard/pkg/log"
)

// Handler is the public interface for the settings HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc settings.UseCase
}

// New creates a new HTTP handler for settings.
func New(l log.Logger, uc settings.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/settings", h.Get)
}
