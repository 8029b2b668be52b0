package venue

import "context"

// Repository describes venue persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Venue, error)
	GetByID(ctx context.Context, id int64) (Venue, error)
	Create(ctx context.Context, v Venue) (Venue, error)
	Update(ctx context.Context, v Venue) (Venue, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
