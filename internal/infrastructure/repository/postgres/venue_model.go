package postgres

import (
	"time"

	"github.com/cricketlabs/livestats/internal/domain/venue"
)

type venueTableModel struct {
	ID        int64     `db:"venue_id"`
	Name      string    `db:"venue_name"`
	City      string    `db:"city"`
	Country   string    `db:"country"`
	Capacity  int       `db:"capacity"`
	CreatedAt time.Time `db:"created_at"`
}

type venueInsertModel struct {
	Name     string `db:"venue_name"`
	City     string `db:"city"`
	Country  string `db:"country"`
	Capacity int    `db:"capacity"`
}

func venueFromTableModel(row venueTableModel) venue.Venue {
	return venue.Venue{
		ID:        row.ID,
		Name:      row.Name,
		City:      row.City,
		Country:   row.Country,
		Capacity:  row.Capacity,
		CreatedAt: row.CreatedAt,
	}
}
