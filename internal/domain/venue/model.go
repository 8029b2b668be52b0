package venue

import "time"

// Venue is one cricket ground.
type Venue struct {
	ID        int64
	Name      string
	City      string
	Country   string
	Capacity  int
	CreatedAt time.Time
}

// ListFilter narrows venue listings. Zero values mean "no constraint".
type ListFilter struct {
	Country     string
	MinCapacity int
	Limit       int
	Offset      int
}
