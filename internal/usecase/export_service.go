package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/cricketlabs/livestats/internal/domain/player"
	"github.com/valyala/bytebufferpool"
)

var playerExportHeader = []string{
	"player_id", "name", "country", "playing_role", "batting_style", "bowling_style",
	"total_runs", "total_wickets", "batting_average", "bowling_average",
	"economy_rate", "strike_rate", "matches_played", "centuries", "fifties",
}

type ExportService struct {
	playerRepo player.Repository
}

func NewExportService(playerRepo player.Repository) *ExportService {
	return &ExportService{playerRepo: playerRepo}
}

// ExportPlayersCSV renders the full player table as CSV, repository order.
func (s *ExportService) ExportPlayersCSV(ctx context.Context, filter player.ListFilter) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.ExportPlayersCSV")
	defer span.End()

	filter.Limit = maxListLimit
	filter.Offset = 0
	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players for export: %w", err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := csv.NewWriter(buf)
	if err := writer.Write(playerExportHeader); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}
	for _, p := range items {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Country,
			p.PlayingRole,
			p.BattingStyle,
			p.BowlingStyle,
			strconv.FormatInt(p.TotalRuns, 10),
			strconv.Itoa(p.TotalWickets),
			strconv.FormatFloat(p.BattingAverage, 'f', 2, 64),
			strconv.FormatFloat(p.BowlingAverage, 'f', 2, 64),
			strconv.FormatFloat(p.EconomyRate, 'f', 2, 64),
			strconv.FormatFloat(p.StrikeRate, 'f', 2, 64),
			strconv.Itoa(p.MatchesPlayed),
			strconv.Itoa(p.Centuries),
			strconv.Itoa(p.Fifties),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write export row player=%d: %w", p.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush export: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
