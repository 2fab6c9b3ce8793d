package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"focus-dashboard/pkg/log"
	"focus-dashboard/pkg/response"
)

const HeaderRequestID = "X-Request-ID"

// RequestID reuses the inbound X-Request-ID or generates one, and stores it in the request context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog writes one line per request after the handler chain completes.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		m.l.Infof(c.Request.Context(), "%s %s %d %s", c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery turns a handler panic into the standard 500 envelope.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		m.l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		response.InternalError(c, nil)
		c.Abort()
	})
}

// CORS allows the dashboard front end to call the API from the configured origins.
// An empty list allows any origin.
func (m Middleware) CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(m.allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.allowedOrigins
	}
	return cors.New(cfg)
}
