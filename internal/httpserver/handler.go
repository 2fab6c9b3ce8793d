package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"focus-dashboard/internal/model"
	quickaddHTTP "focus-dashboard/internal/quickadd/delivery/http"
	scheduleHTTP "focus-dashboard/internal/schedule/delivery/http"
	settingsHTTP "focus-dashboard/internal/settings/delivery/http"
	statsHTTP "focus-dashboard/internal/stats/delivery/http"
	todoHTTP "focus-dashboard/internal/todo/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.Recovery(),
		srv.mw.RequestID(),
		srv.mw.CORS(),
		srv.mw.AccessLog(),
	)

	ctx := context.Background()
	if model.ParseEnvironment(srv.environment).IsProduction() {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	scheduleHTTP.RegisterRoutes(api, srv.scheduleHandler)
	quickaddHTTP.RegisterRoutes(api, srv.quickAddHandler)
	todoHTTP.RegisterRoutes(api, srv.todoHandler)
	statsHTTP.RegisterRoutes(api, srv.statsHandler)
	settingsHTTP.RegisterRoutes(api, srv.settingsHandler)

	srv.l.Infof(context.Background(), "Domain routes registered under /api/v1")
}
