package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quickaddHTTP "focus-dashboard/internal/quickadd/delivery/http"
	quickaddUC "focus-dashboard/internal/quickadd/usecase"
	scheduleHTTP "focus-dashboard/internal/schedule/delivery/http"
	scheduleMemory "focus-dashboard/internal/schedule/repository/memory"
	scheduleUC "focus-dashboard/internal/schedule/usecase"
	settingsHTTP "focus-dashboard/internal/settings/delivery/http"
	settingsUC "focus-dashboard/internal/settings/usecase"
	statsHTTP "focus-dashboard/internal/stats/delivery/http"
	statsUC "focus-dashboard/internal/stats/usecase"
	todoHTTP "focus-dashboard/internal/todo/delivery/http"
	todoMemory "focus-dashboard/internal/todo/repository/memory"
	todoUC "focus-dashboard/internal/todo/usecase"
	"focus-dashboard/pkg/log"
)

func newTestConfig() Config {
	l := log.NewNop()
	schedules := scheduleUC.New(l, nil, scheduleMemory.New(), scheduleUC.Config{})

	return Config{
		Port:            8080,
		Mode:            "test",
		Environment:     "development",
		ScheduleHandler: scheduleHTTP.New(l, schedules),
		QuickAddHandler: quickaddHTTP.New(l, quickaddUC.New(l, schedules, quickaddUC.Config{}), time.UTC),
		TodoHandler:     todoHTTP.New(l, todoUC.New(l, todoMemory.New())),
		StatsHandler:    statsHTTP.New(l, statsUC.New(l, schedules, time.UTC)),
		SettingsHandler: settingsHTTP.New(l, settingsUC.New(l, settingsUC.Config{Provider: "gemini"})),
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing port", mutate: func(c *Config) { c.Port = 0 }},
		{name: "missing mode", mutate: func(c *Config) { c.Mode = "" }},
		{name: "missing handler", mutate: func(c *Config) { c.StatsHandler = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			tt.mutate(&cfg)
			_, err := New(log.NewNop(), cfg)
			assert.Error(t, err)
		})
	}
}

func TestRoutes(t *testing.T) {
	srv, err := New(log.NewNop(), newTestConfig())
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/api/v1/schedules", http.StatusOK},
		{http.MethodGet, "/api/v1/todos", http.StatusOK},
		{http.MethodGet, "/api/v1/stats/weekly", http.StatusOK},
		{http.MethodGet, "/api/v1/stats/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/settings", http.StatusOK},
		{http.MethodPost, "/api/v1/quick-add/sessions", http.StatusCreated},
		{http.MethodGet, "/api/v1/quick-add/sessions/missing", http.StatusNotFound},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}
