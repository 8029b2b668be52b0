package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cricketlabs/livestats/internal/domain/team"
	qb "github.com/cricketlabs/livestats/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	builder := qb.Select("*").From("teams")
	if filter.Country != "" {
		builder = builder.Where(qb.Eq("country", filter.Country))
	}
	query, args, err := builder.
		OrderBy("team_name", "team_id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromTableModel(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("team_id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build select team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, team.ErrNotFound
		}
		return team.Team{}, fmt.Errorf("select team id=%d: %w", id, err)
	}
	return teamFromTableModel(row), nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	insertModel := teamInsertModel{
		Name:          t.Name,
		Country:       t.Country,
		MatchesPlayed: t.MatchesPlayed,
		MatchesWon:    t.MatchesWon,
		MatchesLost:   t.MatchesLost,
		WinPercentage: t.WinPercentage,
	}
	query, args, err := qb.InsertModel("teams", insertModel, "RETURNING team_id, created_at")
	if err != nil {
		return team.Team{}, fmt.Errorf("build create team query: %w", err)
	}

	var out struct {
		ID        int64        `db:"team_id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	t.ID = out.ID
	t.CreatedAt = nullTimeToTime(out.CreatedAt)
	return t, nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) (team.Team, error) {
	query, args, err := qb.Update("teams").
		Set("team_name", t.Name).
		Set("country", t.Country).
		Set("matches_played", t.MatchesPlayed).
		Set("matches_won", t.MatchesWon).
		Set("matches_lost", t.MatchesLost).
		Set("win_percentage", t.WinPercentage).
		Where(qb.Eq("team_id", t.ID)).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return team.Team{}, fmt.Errorf("update team id=%d: %w", t.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return team.Team{}, fmt.Errorf("rows affected update team: %w", err)
	}
	if affected == 0 {
		return team.Team{}, team.ErrNotFound
	}
	return r.GetByID(ctx, t.ID)
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE team_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete team: %w", err)
	}
	if affected == 0 {
		return team.ErrNotFound
	}
	return nil
}

func (r *TeamRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return 0, fmt.Errorf("count teams: %w", err)
	}
	return count, nil
}
