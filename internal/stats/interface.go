package stats

import "context"

// UseCase produces plain summary records over the schedule collection.
type UseCase interface {
	Weekly(ctx context.Context, input WeeklyInput) (WeeklyOutput, error)
	Categories(ctx context.Context, input CategoriesInput) (CategoriesOutput, error)
}
