package http

import (
	"github.com/gin-gonic/gin"

	"focus-dashboard/internal/todo"
	"focus-dashboard/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Toggle(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase) Handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	todos := rg.Group("/todos")
	{
		todos.GET("", h.List)
		todos.POST("", h.Create)
		todos.PATCH("/:id/toggle", h.Toggle)
	}
}
