package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/venue"
)

type VenueRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]venue.Venue
}

func NewVenueRepository(seed []venue.Venue) *VenueRepository {
	r := &VenueRepository{rows: make(map[int64]venue.Venue, len(seed))}
	for _, item := range seed {
		r.nextID++
		item.ID = r.nextID
		item.CreatedAt = time.Now().UTC()
		r.rows[item.ID] = item
	}
	return r
}

func (r *VenueRepository) List(_ context.Context, filter venue.ListFilter) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]venue.Venue, 0, len(r.rows))
	for _, item := range r.rows {
		if filter.Country != "" && item.Country != filter.Country {
			continue
		}
		if filter.MinCapacity > 0 && item.Capacity < filter.MinCapacity {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Capacity != out[j].Capacity {
			return out[i].Capacity > out[j].Capacity
		}
		return out[i].ID < out[j].ID
	})
	return applyWindow(out, filter.Limit, filter.Offset), nil
}

func (r *VenueRepository) GetByID(_ context.Context, id int64) (venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[id]
	if !ok {
		return venue.Venue{}, venue.ErrNotFound
	}
	return item, nil
}

func (r *VenueRepository) Create(_ context.Context, v venue.Venue) (venue.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	v.CreatedAt = time.Now().UTC()
	r.rows[v.ID] = v
	return v, nil
}

func (r *VenueRepository) Update(_ context.Context, v venue.Venue) (venue.Venue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[v.ID]
	if !ok {
		return venue.Venue{}, venue.ErrNotFound
	}
	v.CreatedAt = existing.CreatedAt
	r.rows[v.ID] = v
	return v, nil
}

func (r *VenueRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return venue.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *VenueRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.rows)), nil
}
