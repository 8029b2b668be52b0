package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cricketlabs/livestats/internal/domain/player"
	qb "github.com/cricketlabs/livestats/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	builder := qb.Select("*").From("players")
	if filter.Country != "" {
		builder = builder.Where(qb.Eq("country", filter.Country))
	}
	if filter.Role != "" {
		builder = builder.Where(qb.Eq("playing_role", filter.Role))
	}
	query, args, err := builder.
		OrderBy("name", "player_id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromTableModel(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("player_id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, player.ErrNotFound
		}
		return player.Player{}, fmt.Errorf("select player id=%d: %w", id, err)
	}
	return playerFromTableModel(row), nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerToInsertModel(p), "RETURNING player_id, created_at")
	if err != nil {
		return player.Player{}, fmt.Errorf("build create player query: %w", err)
	}

	var out struct {
		ID        int64        `db:"player_id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	p.ID = out.ID
	p.CreatedAt = nullTimeToTime(out.CreatedAt)
	return p, nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) (player.Player, error) {
	query, args, err := qb.Update("players").
		Set("name", p.Name).
		Set("country", p.Country).
		Set("playing_role", p.PlayingRole).
		Set("batting_style", p.BattingStyle).
		Set("bowling_style", p.BowlingStyle).
		Set("total_runs", p.TotalRuns).
		Set("total_wickets", p.TotalWickets).
		Set("batting_average", p.BattingAverage).
		Set("bowling_average", p.BowlingAverage).
		Set("economy_rate", p.EconomyRate).
		Set("strike_rate", p.StrikeRate).
		Set("matches_played", p.MatchesPlayed).
		Set("centuries", p.Centuries).
		Set("fifties", p.Fifties).
		Where(qb.Eq("player_id", p.ID)).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player id=%d: %w", p.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return player.Player{}, fmt.Errorf("rows affected update player: %w", err)
	}
	if affected == 0 {
		return player.Player{}, player.ErrNotFound
	}
	return r.GetByID(ctx, p.ID)
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE player_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete player id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete player: %w", err)
	}
	if affected == 0 {
		return player.ErrNotFound
	}
	return nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return count, nil
}
