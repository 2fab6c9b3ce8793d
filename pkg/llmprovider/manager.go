package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"focus-dashboard/pkg/log"
)

// Manager wraps the single active provider with a call timeout and logging.
// It implements Provider itself so callers depend only on the interface.
type Manager struct {
	provider Provider
	config   *Config
	logger   log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	// Timeout bounds one GenerateContent call. Zero leaves the caller's deadline alone.
	Timeout time.Duration
}

// NewManager creates a new Provider Manager with the given provider, config, and logger
func NewManager(provider Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// Name returns the active provider name
func (m *Manager) Name() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Name()
}

// Model returns the active model name
func (m *Manager) Model() string {
	if m.provider == nil {
		return ""
	}
	return m.provider.Model()
}

// GenerateContent makes exactly one call to the active provider.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if m.provider == nil {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := m.provider.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		}
		err = &ProviderError{Provider: m.provider.Name(), Err: err}
		m.logFailure(ctx, err, time.Since(start))
		return nil, err
	}

	m.logSuccess(ctx, resp, time.Since(start))
	return resp, nil
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, resp *Response, elapsed time.Duration) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d elapsed=%s",
		m.provider.Name(), m.provider.Model(), in, out, elapsed)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, err error, elapsed time.Duration) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s elapsed=%s error=%v",
		m.provider.Name(), m.provider.Model(), elapsed, err)
}
