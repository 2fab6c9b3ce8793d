package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"focus-dashboard/internal/quickadd"
	"focus-dashboard/internal/schedule"
	pkgLog "focus-dashboard/pkg/log"
)

const (
	DefaultSessionTTL      = 10 * time.Minute
	DefaultMaxSessions     = 128
	DefaultRateLimitPerMin = 30
	DefaultRateLimitBurst  = 5
)

// Config sizes the session store and the outbound limiter.
type Config struct {
	SessionTTL      time.Duration
	MaxSessions     int
	RateLimitPerMin int
	RateLimitBurst  int
}

type implUseCase struct {
	l         pkgLog.Logger
	schedules schedule.UseCase
	sessions  *expirable.LRU[string, *session]
	limiter   *rate.Limiter
	newID     func() string
	now       func() time.Time
}

var _ quickadd.UseCase = (*implUseCase)(nil)

// New creates a new quickadd UseCase instance.
func New(l pkgLog.Logger, schedules schedule.UseCase, cfg Config) quickadd.UseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.RateLimitPerMin <= 0 {
		cfg.RateLimitPerMin = DefaultRateLimitPerMin
	}
	if cfg.RateLimitBurst <= 0 {
		cfg.RateLimitBurst = DefaultRateLimitBurst
	}

	return &implUseCase{
		l:         l,
		schedules: schedules,
		// Eviction by TTL, capacity or Remove cancels the session's in-flight work.
		sessions: expirable.NewLRU[string, *session](
			cfg.MaxSessions,
			func(_ string, s *session) { s.close() },
			cfg.SessionTTL,
		),
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RateLimitPerMin)/60.0), cfg.RateLimitBurst),
		newID:   uuid.NewString,
		now:     time.Now,
	}
}
