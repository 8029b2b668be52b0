package postgres

import (
	"database/sql"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/match"
)

type matchTableModel struct {
	ID            int64          `db:"match_id"`
	ExternalID    sql.NullInt64  `db:"cricbuzz_match_id"`
	Description   sql.NullString `db:"match_description"`
	Format        sql.NullString `db:"match_format"`
	Team1ID       sql.NullInt64  `db:"team1_id"`
	Team2ID       sql.NullInt64  `db:"team2_id"`
	VenueID       sql.NullInt64  `db:"venue_id"`
	Team1Name     sql.NullString `db:"team1_name"`
	Team2Name     sql.NullString `db:"team2_name"`
	VenueName     sql.NullString `db:"venue_name"`
	City          sql.NullString `db:"city"`
	MatchDate     sql.NullTime   `db:"match_date"`
	SeriesName    sql.NullString `db:"series_name"`
	CurrentStatus sql.NullString `db:"current_status"`
	MatchStatus   sql.NullString `db:"match_status"`
	WinningTeam   sql.NullString `db:"winning_team"`
	TossWinner    sql.NullString `db:"toss_winner"`
	TossDecision  sql.NullString `db:"toss_decision"`
	VictoryMargin sql.NullString `db:"victory_margin"`
	CreatedAt     time.Time      `db:"created_at"`
}

type matchInsertModel struct {
	ExternalID    sql.NullInt64  `db:"cricbuzz_match_id"`
	Description   sql.NullString `db:"match_description"`
	Format        sql.NullString `db:"match_format"`
	Team1ID       sql.NullInt64  `db:"team1_id"`
	Team2ID       sql.NullInt64  `db:"team2_id"`
	VenueID       sql.NullInt64  `db:"venue_id"`
	Team1Name     sql.NullString `db:"team1_name"`
	Team2Name     sql.NullString `db:"team2_name"`
	VenueName     sql.NullString `db:"venue_name"`
	City          sql.NullString `db:"city"`
	MatchDate     sql.NullTime   `db:"match_date"`
	SeriesName    sql.NullString `db:"series_name"`
	CurrentStatus sql.NullString `db:"current_status"`
	MatchStatus   sql.NullString `db:"match_status"`
	WinningTeam   sql.NullString `db:"winning_team"`
	TossWinner    sql.NullString `db:"toss_winner"`
	TossDecision  sql.NullString `db:"toss_decision"`
	VictoryMargin sql.NullString `db:"victory_margin"`
}

func matchFromTableModel(row matchTableModel) match.Match {
	return match.Match{
		ID:            row.ID,
		ExternalID:    nullInt64ToPtr(row.ExternalID),
		Description:   nullStringToString(row.Description),
		Format:        nullStringToString(row.Format),
		Team1ID:       nullInt64ToPtr(row.Team1ID),
		Team2ID:       nullInt64ToPtr(row.Team2ID),
		VenueID:       nullInt64ToPtr(row.VenueID),
		Team1Name:     nullStringToString(row.Team1Name),
		Team2Name:     nullStringToString(row.Team2Name),
		VenueName:     nullStringToString(row.VenueName),
		City:          nullStringToString(row.City),
		MatchDate:     nullTimeToTime(row.MatchDate),
		SeriesName:    nullStringToString(row.SeriesName),
		Status:        nullStringToString(row.CurrentStatus),
		State:         nullStringToString(row.MatchStatus),
		WinningTeam:   nullStringToString(row.WinningTeam),
		TossWinner:    nullStringToString(row.TossWinner),
		TossDecision:  nullStringToString(row.TossDecision),
		VictoryMargin: nullStringToString(row.VictoryMargin),
		CreatedAt:     row.CreatedAt,
	}
}

func matchToInsertModel(m match.Match) matchInsertModel {
	return matchInsertModel{
		ExternalID:    ptrToNullInt64(m.ExternalID),
		Description:   stringToNullString(m.Description),
		Format:        stringToNullString(m.Format),
		Team1ID:       ptrToNullInt64(m.Team1ID),
		Team2ID:       ptrToNullInt64(m.Team2ID),
		VenueID:       ptrToNullInt64(m.VenueID),
		Team1Name:     stringToNullString(m.Team1Name),
		Team2Name:     stringToNullString(m.Team2Name),
		VenueName:     stringToNullString(m.VenueName),
		City:          stringToNullString(m.City),
		MatchDate:     timeToNullTime(m.MatchDate),
		SeriesName:    stringToNullString(m.SeriesName),
		CurrentStatus: stringToNullString(m.Status),
		MatchStatus:   stringToNullString(m.State),
		WinningTeam:   stringToNullString(m.WinningTeam),
		TossWinner:    stringToNullString(m.TossWinner),
		TossDecision:  stringToNullString(m.TossDecision),
		VictoryMargin: stringToNullString(m.VictoryMargin),
	}
}
