package cache

import (
	"context"

	"github.com/cricketlabs/livestats/internal/domain/analytics"
	basecache "github.com/cricketlabs/livestats/internal/platform/cache"
)

// AnalyticsRepository memoizes catalog query results. Results change only
// when underlying tables change, so a short TTL keeps the dashboard cheap
// without explicit invalidation.
type AnalyticsRepository struct {
	next  analytics.Repository
	cache *basecache.Store
}

func NewAnalyticsRepository(next analytics.Repository, cache *basecache.Store) *AnalyticsRepository {
	return &AnalyticsRepository{next: next, cache: cache}
}

func (r *AnalyticsRepository) Run(ctx context.Context, q analytics.Query) ([]analytics.Row, error) {
	key := "analytics:run:" + q.ID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		rows, err := r.next.Run(ctx, q)
		if err != nil {
			return nil, err
		}
		return append([]analytics.Row(nil), rows...), nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := v.([]analytics.Row)
	return append([]analytics.Row(nil), rows...), nil
}
