package memory

import (
	"context"

	"github.com/cricketlabs/livestats/internal/domain/analytics"
)

// AnalyticsRepository exists so dev mode can boot without a database. The
// catalog is raw SQL, so every run reports the store as unsupported.
type AnalyticsRepository struct{}

func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

func (r *AnalyticsRepository) Run(_ context.Context, _ analytics.Query) ([]analytics.Row, error) {
	return nil, analytics.ErrUnsupported
}
