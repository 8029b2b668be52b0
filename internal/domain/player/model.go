package player

import "time"

const (
	RoleBatsman             = "Batsman"
	RoleBowler              = "Bowler"
	RoleAllRounder          = "All-rounder"
	RoleWicketKeeperBatsman = "Wicket-keeper-Batsman"
)

// Player is one international cricketer with career aggregates.
type Player struct {
	ID             int64
	Name           string
	Country        string
	PlayingRole    string
	BattingStyle   string
	BowlingStyle   string
	TotalRuns      int64
	TotalWickets   int
	BattingAverage float64
	BowlingAverage float64
	EconomyRate    float64
	StrikeRate     float64
	MatchesPlayed  int
	Centuries      int
	Fifties        int
	CreatedAt      time.Time
}

// ListFilter narrows player listings. Zero values mean "no constraint".
type ListFilter struct {
	Country string
	Role    string
	Limit   int
	Offset  int
}
