package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/cricketlabs/livestats/internal/domain/analytics"
)

// QuerySummary is the catalog listing shape. SQL text stays server-side.
type QuerySummary struct {
	ID          string
	Title       string
	Description string
	Level       string
}

type QueryResult struct {
	Query QuerySummary
	Rows  []analytics.Row
}

type AnalyticsService struct {
	analyticsRepo analytics.Repository
	catalog       []analytics.Query
	catalogByID   map[string]analytics.Query
}

func NewAnalyticsService(analyticsRepo analytics.Repository) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		catalog:       analytics.Catalog(),
		catalogByID:   analytics.CatalogByID(),
	}
}

// ListQueries returns the catalog in presentation order.
func (s *AnalyticsService) ListQueries(_ context.Context) []QuerySummary {
	out := make([]QuerySummary, 0, len(s.catalog))
	for _, q := range s.catalog {
		out = append(out, QuerySummary{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Level:       q.Level,
		})
	}
	return out
}

func (s *AnalyticsService) RunQuery(ctx context.Context, id string) (QueryResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.RunQuery")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return QueryResult{}, fmt.Errorf("%w: query id is required", ErrInvalidInput)
	}
	q, ok := s.catalogByID[id]
	if !ok {
		return QueryResult{}, fmt.Errorf("%w: analytics query=%s", ErrNotFound, id)
	}

	rows, err := s.analyticsRepo.Run(ctx, q)
	if err != nil {
		if stderrors.Is(err, analytics.ErrUnsupported) {
			return QueryResult{}, fmt.Errorf("%w: analytics store: %v", ErrDependencyUnavailable, err)
		}
		return QueryResult{}, fmt.Errorf("run analytics query: %w", err)
	}

	return QueryResult{
		Query: QuerySummary{ID: q.ID, Title: q.Title, Description: q.Description, Level: q.Level},
		Rows:  rows,
	}, nil
}
