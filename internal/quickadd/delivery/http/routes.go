package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	sessions := rg.Group("/quick-add/sessions")
	{
		sessions.POST("", h.Open)
		sessions.GET("/:id", h.Get)
		sessions.POST("/:id/extract", h.Extract)
		sessions.POST("/:id/confirm", h.Confirm)
		sessions.DELETE("/:id", h.Close)
	}
}
