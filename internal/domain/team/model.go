package team

import "time"

// Team is one international side with win/loss aggregates.
type Team struct {
	ID            int64
	Name          string
	Country       string
	MatchesPlayed int
	MatchesWon    int
	MatchesLost   int
	WinPercentage float64
	CreatedAt     time.Time
}

// ListFilter narrows team listings. Zero values mean "no constraint".
type ListFilter struct {
	Country string
	Limit   int
	Offset  int
}
