package quickadd

import "context"

// UseCase drives the quick-add input surfaces.
type UseCase interface {
	// Open creates a new idle session.
	Open(ctx context.Context) (Session, error)

	// Submit runs one extraction for the session and waits for it or for ctx.
	// When ctx ends first the extraction keeps running and its result lands in the session.
	Submit(ctx context.Context, input SubmitInput) (Session, error)

	// Confirm commits the pending extraction and closes the session.
	Confirm(ctx context.Context, id string) (ConfirmOutput, error)

	// Close discards the session. An in-flight result is dropped, never applied.
	Close(ctx context.Context, id string) error

	// Get returns a snapshot of the session.
	Get(ctx context.Context, id string) (Session, error)
}
