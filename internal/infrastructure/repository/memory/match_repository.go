package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{rows: make(map[int64]match.Match, 64)}
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.rows))
	for _, item := range r.rows {
		if filter.Format != "" && item.Format != filter.Format {
			continue
		}
		if filter.State != "" && item.State != filter.State {
			continue
		}
		if filter.Series != "" && item.SeriesName != filter.Series {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		return out[i].ID > out[j].ID
	})
	return applyWindow(out, filter.Limit, filter.Offset), nil
}

func (r *MatchRepository) ListFeedSourced(_ context.Context, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.rows))
	for _, item := range r.rows {
		if item.ExternalID == nil {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return applyWindow(out, limit, 0), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[id]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	return item, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	m.CreatedAt = time.Now().UTC()
	r.rows[m.ID] = m
	return m, nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[m.ID]
	if !ok {
		return match.Match{}, match.ErrNotFound
	}
	m.CreatedAt = existing.CreatedAt
	r.rows[m.ID] = m
	return m, nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return match.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *MatchRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.rows)), nil
}

func (r *MatchRepository) CountFeedSourced(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, item := range r.rows {
		if item.ExternalID != nil {
			count++
		}
	}
	return count, nil
}

// UpsertFromFeed mirrors the database semantics: a known provider id only
// refreshes current_status and match_status, everything else stays as first
// ingested. Records without a provider id always insert.
func (r *MatchRepository) UpsertFromFeed(_ context.Context, rec match.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ExternalID != nil {
		for id, existing := range r.rows {
			if existing.ExternalID != nil && *existing.ExternalID == *rec.ExternalID {
				existing.Status = rec.Status
				existing.State = rec.State
				r.rows[id] = existing
				return nil
			}
		}
	}

	r.nextID++
	r.rows[r.nextID] = match.Match{
		ID:          r.nextID,
		ExternalID:  rec.ExternalID,
		Description: rec.Description,
		Format:      rec.Format,
		Team1Name:   rec.Team1Name,
		Team2Name:   rec.Team2Name,
		VenueName:   rec.VenueName,
		City:        rec.City,
		MatchDate:   rec.StartTime(),
		SeriesName:  rec.SeriesName,
		Status:      rec.Status,
		State:       rec.State,
		CreatedAt:   time.Now().UTC(),
	}
	return nil
}
