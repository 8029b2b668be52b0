package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]player.Player
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	r := &PlayerRepository{rows: make(map[int64]player.Player, len(seed))}
	for _, item := range seed {
		r.nextID++
		item.ID = r.nextID
		item.CreatedAt = time.Now().UTC()
		r.rows[item.ID] = item
	}
	return r
}

func (r *PlayerRepository) List(_ context.Context, filter player.ListFilter) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.rows))
	for _, item := range r.rows {
		if filter.Country != "" && item.Country != filter.Country {
			continue
		}
		if filter.Role != "" && item.PlayingRole != filter.Role {
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

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[id]
	if !ok {
		return player.Player{}, player.ErrNotFound
	}
	return item, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now().UTC()
	r.rows[p.ID] = p
	return p, nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rows[p.ID]
	if !ok {
		return player.Player{}, player.ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	r.rows[p.ID] = p
	return p, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return player.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *PlayerRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.rows)), nil
}

func applyWindow[T any](rows []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(rows) {
			return []T{}
		}
		rows = rows[offset:]
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
