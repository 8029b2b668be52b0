package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, error)
	Create(ctx context.Context, p Player) (Player, error)
	Update(ctx context.Context, p Player) (Player, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
