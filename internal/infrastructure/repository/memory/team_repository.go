package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]team.Team
}

func NewTeamRepository(seed []team.Team) *TeamRepository {
	r := &TeamRepository{rows: make(map[int64]team.Team, len(seed))}
	for _, item := range seed {
		r.nextID++
		item.ID = r.nextID
		item.CreatedAt = time.Now().UTC()
		r.rows[item.ID] = item
	}
	return r
}

func (r *TeamRepository) List(_ context.Context, filter team.ListFilter) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.rows))
	for _, item := range r.rows {
		if filter.Country != "" && item.Country != filter.Country {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return applyWindow(out, filter.Limit, filter.Offset), nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[id]
	if !ok {
		return team.Team{}, team.ErrNotFound
	}
	return item, nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now().UTC()
	r.rows[t.ID] = t
	return t, nil
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[t.ID]
	if !ok {
		return team.Team{}, team.ErrNotFound
	}
	t.CreatedAt = existing.CreatedAt
	r.rows[t.ID] = t
	return t, nil
}

func (r *TeamRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return team.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *TeamRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.rows)), nil
}
