package analytics

import "context"

// Repository runs catalog queries against the store.
type Repository interface {
	Run(ctx context.Context, q Query) ([]Row, error)
}
