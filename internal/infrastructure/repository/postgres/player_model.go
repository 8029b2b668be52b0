package postgres

import (
	"time"

	"github.com/cricketlabs/livestats/internal/domain/player"
)

type playerTableModel struct {
	ID             int64     `db:"player_id"`
	Name           string    `db:"name"`
	Country        string    `db:"country"`
	PlayingRole    string    `db:"playing_role"`
	BattingStyle   string    `db:"batting_style"`
	BowlingStyle   string    `db:"bowling_style"`
	TotalRuns      int64     `db:"total_runs"`
	TotalWickets   int       `db:"total_wickets"`
	BattingAverage float64   `db:"batting_average"`
	BowlingAverage float64   `db:"bowling_average"`
	EconomyRate    float64   `db:"economy_rate"`
	StrikeRate     float64   `db:"strike_rate"`
	MatchesPlayed  int       `db:"matches_played"`
	Centuries      int       `db:"centuries"`
	Fifties        int       `db:"fifties"`
	CreatedAt      time.Time `db:"created_at"`
}

type playerInsertModel struct {
	Name           string  `db:"name"`
	Country        string  `db:"country"`
	PlayingRole    string  `db:"playing_role"`
	BattingStyle   string  `db:"batting_style"`
	BowlingStyle   string  `db:"bowling_style"`
	TotalRuns      int64   `db:"total_runs"`
	TotalWickets   int     `db:"total_wickets"`
	BattingAverage float64 `db:"batting_average"`
	BowlingAverage float64 `db:"bowling_average"`
	EconomyRate    float64 `db:"economy_rate"`
	StrikeRate     float64 `db:"strike_rate"`
	MatchesPlayed  int     `db:"matches_played"`
	Centuries      int     `db:"centuries"`
	Fifties        int     `db:"fifties"`
}

func playerFromTableModel(row playerTableModel) player.Player {
	return player.Player{
		ID:             row.ID,
		Name:           row.Name,
		Country:        row.Country,
		PlayingRole:    row.PlayingRole,
		BattingStyle:   row.BattingStyle,
		BowlingStyle:   row.BowlingStyle,
		TotalRuns:      row.TotalRuns,
		TotalWickets:   row.TotalWickets,
		BattingAverage: row.BattingAverage,
		BowlingAverage: row.BowlingAverage,
		EconomyRate:    row.EconomyRate,
		StrikeRate:     row.StrikeRate,
		MatchesPlayed:  row.MatchesPlayed,
		Centuries:      row.Centuries,
		Fifties:        row.Fifties,
		CreatedAt:      row.CreatedAt,
	}
}

func playerToInsertModel(p player.Player) playerInsertModel {
	return playerInsertModel{
		Name:           p.Name,
		Country:        p.Country,
		PlayingRole:    p.PlayingRole,
		BattingStyle:   p.BattingStyle,
		BowlingStyle:   p.BowlingStyle,
		TotalRuns:      p.TotalRuns,
		TotalWickets:   p.TotalWickets,
		BattingAverage: p.BattingAverage,
		BowlingAverage: p.BowlingAverage,
		EconomyRate:    p.EconomyRate,
		StrikeRate:     p.StrikeRate,
		MatchesPlayed:  p.MatchesPlayed,
		Centuries:      p.Centuries,
		Fifties:        p.Fifties,
	}
}
