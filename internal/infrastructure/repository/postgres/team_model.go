package postgres

import (
	"time"

	"github.com/cricketlabs/livestats/internal/domain/team"
)

type teamTableModel struct {
	ID            int64     `db:"team_id"`
	Name          string    `db:"team_name"`
	Country       string    `db:"country"`
	MatchesPlayed int       `db:"matches_played"`
	MatchesWon    int       `db:"matches_won"`
	MatchesLost   int       `db:"matches_lost"`
	WinPercentage float64   `db:"win_percentage"`
	CreatedAt     time.Time `db:"created_at"`
}

type teamInsertModel struct {
	Name          string  `db:"team_name"`
	Country       string  `db:"country"`
	MatchesPlayed int     `db:"matches_played"`
	MatchesWon    int     `db:"matches_won"`
	MatchesLost   int     `db:"matches_lost"`
	WinPercentage float64 `db:"win_percentage"`
}

func teamFromTableModel(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.ID,
		Name:          row.Name,
		Country:       row.Country,
		MatchesPlayed: row.MatchesPlayed,
		MatchesWon:    row.MatchesWon,
		MatchesLost:   row.MatchesLost,
		WinPercentage: row.WinPercentage,
		CreatedAt:     row.CreatedAt,
	}
}
