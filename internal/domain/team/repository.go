package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, error)
	Create(ctx context.Context, t Team) (Team, error)
	Update(ctx context.Context, t Team) (Team, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
