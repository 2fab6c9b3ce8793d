package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"focus-dashboard/internal/middleware"
	quickaddHTTP "focus-dashboard/internal/quickadd/delivery/http"
	scheduleHTTP "focus-dashboard/internal/schedule/delivery/http"
	settingsHTTP "focus-dashboard/internal/settings/delivery/http"
	statsHTTP "focus-dashboard/internal/stats/delivery/http"
	todoHTTP "focus-dashboard/internal/todo/delivery/http"
	"focus-dashboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	scheduleHandler scheduleHTTP.Handler
	quickAddHandler quickaddHTTP.Handler
	todoHandler     todoHTTP.Handler
	statsHandler    statsHTTP.Handler
	settingsHandler settingsHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string

	ScheduleHandler scheduleHTTP.Handler
	QuickAddHandler quickaddHTTP.Handler
	TodoHandler     todoHTTP.Handler
	StatsHandler    statsHTTP.Handler
	SettingsHandler settingsHTTP.Handler
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              middleware.New(logger, cfg.AllowedOrigins),
		scheduleHandler: cfg.ScheduleHandler,
		quickAddHandler: cfg.QuickAddHandler,
		todoHandler:     cfg.TodoHandler,
		statsHandler:    cfg.StatsHandler,
		settingsHandler: cfg.SettingsHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleHandler == nil || srv.quickAddHandler == nil || srv.todoHandler == nil ||
		srv.statsHandler == nil || srv.settingsHandler == nil {
		return errors.New("all domain handlers are required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
