package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/internal/stats"
	"focus-dashboard/pkg/log"
)

// Handler is the public interface for the stats HTTP delivery layer.
type Handler interface {
	Weekly(c *gin.Context)
	Categories(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc stats.UseCase
}

// New creates a new HTTP handler for stats.
func New(l log.Logger, uc stats.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	g := rg.Group("/stats")
	{
		g.GET("/weekly", h.Weekly)
		g.GET("/categories", h.Categories)
	}
}
