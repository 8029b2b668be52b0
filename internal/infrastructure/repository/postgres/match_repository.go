package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cricketlabs/livestats/internal/domain/match"
	qb "github.com/cricketlabs/livestats/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	builder := qb.Select("*").From("matches")
	if filter.Format != "" {
		builder = builder.Where(qb.Eq("match_format", filter.Format))
	}
	if filter.State != "" {
		builder = builder.Where(qb.Eq("match_status", filter.State))
	}
	if filter.Series != "" {
		builder = builder.Where(qb.Eq("series_name", filter.Series))
	}
	query, args, err := builder.
		OrderBy("match_date DESC NULLS LAST", "match_id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromTableModel(row))
	}
	return out, nil
}

// ListFeedSourced returns only rows that came from the provider feed, newest
// first by provider arrival order.
func (r *MatchRepository) ListFeedSourced(ctx context.Context, limit int) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Expr("cricbuzz_match_id IS NOT NULL")).
		OrderBy("match_id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select feed matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select feed matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromTableModel(row))
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("match_id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, match.ErrNotFound
		}
		return match.Match{}, fmt.Errorf("select match id=%d: %w", id, err)
	}
	return matchFromTableModel(row), nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (match.Match, error) {
	query, args, err := qb.InsertModel("matches", matchToInsertModel(m), "RETURNING match_id, created_at")
	if err != nil {
		return match.Match{}, fmt.Errorf("build create match query: %w", err)
	}

	var out struct {
		ID        int64        `db:"match_id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	m.ID = out.ID
	m.CreatedAt = nullTimeToTime(out.CreatedAt)
	return m, nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (match.Match, error) {
	insertModel := matchToInsertModel(m)
	query, args, err := qb.Update("matches").
		Set("match_description", insertModel.Description).
		Set("match_format", insertModel.Format).
		Set("team1_id", insertModel.Team1ID).
		Set("team2_id", insertModel.Team2ID).
		Set("venue_id", insertModel.VenueID).
		Set("team1_name", insertModel.Team1Name).
		Set("team2_name", insertModel.Team2Name).
		Set("venue_name", insertModel.VenueName).
		Set("city", insertModel.City).
		Set("match_date", insertModel.MatchDate).
		Set("series_name", insertModel.SeriesName).
		Set("current_status", insertModel.CurrentStatus).
		Set("match_status", insertModel.MatchStatus).
		Set("winning_team", insertModel.WinningTeam).
		Set("toss_winner", insertModel.TossWinner).
		Set("toss_decision", insertModel.TossDecision).
		Set("victory_margin", insertModel.VictoryMargin).
		Where(qb.Eq("match_id", m.ID)).
		ToSQL()
	if err != nil {
		return match.Match{}, fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match id=%d: %w", m.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return match.Match{}, fmt.Errorf("rows affected update match: %w", err)
	}
	if affected == 0 {
		return match.Match{}, match.ErrNotFound
	}
	return r.GetByID(ctx, m.ID)
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM matches WHERE match_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete match id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete match: %w", err)
	}
	if affected == 0 {
		return match.ErrNotFound
	}
	return nil
}

func (r *MatchRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches`); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return count, nil
}

func (r *MatchRepository) CountFeedSourced(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM matches WHERE cricbuzz_match_id IS NOT NULL`); err != nil {
		return 0, fmt.Errorf("count feed matches: %w", err)
	}
	return count, nil
}

// UpsertFromFeed inserts one normalized feed record. Rows with a known
// provider match id refresh only the two live fields; everything else is
// frozen at first sight. Records without a provider id always insert.
func (r *MatchRepository) UpsertFromFeed(ctx context.Context, rec match.Record) error {
	insertModel := matchInsertModel{
		ExternalID:    ptrToNullInt64(rec.ExternalID),
		Description:   stringToNullString(rec.Description),
		Format:        stringToNullString(rec.Format),
		Team1Name:     stringToNullString(rec.Team1Name),
		Team2Name:     stringToNullString(rec.Team2Name),
		VenueName:     stringToNullString(rec.VenueName),
		City:          stringToNullString(rec.City),
		MatchDate:     timeToNullTime(rec.StartTime()),
		SeriesName:    stringToNullString(rec.SeriesName),
		CurrentStatus: stringToNullString(rec.Status),
		MatchStatus:   stringToNullString(rec.State),
	}

	query, args, err := qb.InsertModel("matches", insertModel, `ON CONFLICT (cricbuzz_match_id) WHERE cricbuzz_match_id IS NOT NULL
DO UPDATE SET
    current_status = EXCLUDED.current_status,
    match_status = EXCLUDED.match_status`)
	if err != nil {
		return fmt.Errorf("build upsert feed match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert feed match external_id=%v: %w", rec.ExternalID, err)
	}
	return nil
}
