package postgres

import (
	"context"
	"fmt"

	"github.com/cricketlabs/livestats/internal/domain/analytics"
	"github.com/jmoiron/sqlx"
)

type AnalyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Run executes one catalog query. SQL comes from the server-side catalog
// only, never from request input.
func (r *AnalyticsRepository) Run(ctx context.Context, q analytics.Query) ([]analytics.Row, error) {
	rows, err := r.db.QueryxContext(ctx, q.SQL)
	if err != nil {
		return nil, fmt.Errorf("run analytics query id=%s: %w", q.ID, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := make([]analytics.Row, 0, 32)
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan analytics row id=%s: %w", q.ID, err)
		}
		for key, value := range row {
			if raw, ok := value.([]byte); ok {
				row[key] = string(raw)
			}
		}
		out = append(out, analytics.Row(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analytics rows id=%s: %w", q.ID, err)
	}
	return out, nil
}
