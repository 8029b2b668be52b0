package match

import "context"

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	ListFeedSourced(ctx context.Context, limit int) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, error)
	Create(ctx context.Context, m Match) (Match, error)
	Update(ctx context.Context, m Match) (Match, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountFeedSourced(ctx context.Context) (int64, error)

	// UpsertFromFeed writes one normalized record. A duplicate external id
	// updates only current_status and match_status; a nil external id always
	// inserts a new row.
	UpsertFromFeed(ctx context.Context, rec Record) error
}
