package match

import (
	"strconv"
	"strings"
	"time"
)

// Record is the flattened form of one feed match entry. It is built fresh on
// every fetch, handed to the store once, then discarded.
type Record struct {
	ExternalID  *int64
	Description string
	Format      string
	SeriesName  string
	Team1Name   string
	Team2Name   string
	VenueName   string
	City        string
	Status      string
	State       string
	StartDate   string
}

// Match is a stored row. Team and venue references are only populated by the
// manual CRUD path; feed ingestion carries display names alone.
type Match struct {
	ID            int64
	ExternalID    *int64
	Description   string
	Format        string
	Team1ID       *int64
	Team2ID       *int64
	VenueID       *int64
	Team1Name     string
	Team2Name     string
	VenueName     string
	City          string
	MatchDate     time.Time
	SeriesName    string
	Status        string
	State         string
	WinningTeam   string
	TossWinner    string
	TossDecision  string
	VictoryMargin string
	CreatedAt     time.Time
}

// ListFilter narrows match listings. Zero values mean "no constraint".
type ListFilter struct {
	Format string
	State  string
	Series string
	Limit  int
	Offset int
}

// StartTime interprets the feed's startDate field, which arrives either as
// epoch milliseconds in a string or as a preformatted date.
func (r Record) StartTime() time.Time {
	raw := strings.TrimSpace(r.StartDate)
	if raw == "" {
		return time.Time{}
	}
	if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC()
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.UTC()
	}
	if parsed, err := time.Parse("2006-01-02", raw); err == nil {
		return parsed
	}
	return time.Time{}
}
