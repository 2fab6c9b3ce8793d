package settings

import "context"

type UseCase interface {
	Get(ctx context.Context) (Output, error)
}
