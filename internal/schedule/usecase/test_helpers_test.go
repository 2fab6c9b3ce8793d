package usecase

import (
	"context"
	"fmt"
	"sync"

	"focus-dashboard/internal/schedule/repository/memory"
	"focus-dashboard/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubProvider is a deterministic llmprovider.Provider.
type stubProvider struct {
	mu       sync.Mutex
	payload  string
	err      error
	block    bool // wait for ctx to end before returning
	calls    int
	requests []*llmprovider.Request
}

func (s *stubProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.mu.Lock()
	s.calls++
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: s.payload}}},
		ProviderName: "stub",
		ModelName:    "stub-model",
	}, nil
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// newTestUseCase wires a use case with sequential ids t1, t2, ...
func newTestUseCase(p llmprovider.Provider, cfg Config) *implUseCase {
	uc := New(&mockLogger{}, p, memory.New(), cfg).(*implUseCase)
	var n int
	uc.newID = func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
	return uc
}
