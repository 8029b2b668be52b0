package postgres

import (
	"context"
	"fmt"

	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
	"github.com/jmoiron/sqlx"
)

var bootstrapStatements = []string{
	`CREATE TABLE IF NOT EXISTS teams (
    team_id SERIAL PRIMARY KEY,
    team_name VARCHAR(100) NOT NULL UNIQUE,
    country VARCHAR(50),
    matches_played INT NOT NULL DEFAULT 0,
    matches_won INT NOT NULL DEFAULT 0,
    matches_lost INT NOT NULL DEFAULT 0,
    win_percentage NUMERIC(5,2) NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS venues (
    venue_id SERIAL PRIMARY KEY,
    venue_name VARCHAR(100) NOT NULL,
    city VARCHAR(50),
    country VARCHAR(50),
    capacity INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (venue_name, city)
)`,
	`CREATE TABLE IF NOT EXISTS players (
    player_id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    country VARCHAR(50),
    playing_role VARCHAR(50),
    batting_style VARCHAR(50),
    bowling_style VARCHAR(50),
    total_runs BIGINT NOT NULL DEFAULT 0,
    total_wickets INT NOT NULL DEFAULT 0,
    batting_average NUMERIC(6,2) NOT NULL DEFAULT 0,
    bowling_average NUMERIC(6,2) NOT NULL DEFAULT 0,
    economy_rate NUMERIC(5,2) NOT NULL DEFAULT 0,
    strike_rate NUMERIC(6,2) NOT NULL DEFAULT 0,
    matches_played INT NOT NULL DEFAULT 0,
    centuries INT NOT NULL DEFAULT 0,
    fifties INT NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS matches (
    match_id SERIAL PRIMARY KEY,
    cricbuzz_match_id BIGINT,
    match_description TEXT,
    match_format VARCHAR(20),
    team1_id INT REFERENCES teams(team_id),
    team2_id INT REFERENCES teams(team_id),
    venue_id INT REFERENCES venues(venue_id),
    team1_name VARCHAR(100),
    team2_name VARCHAR(100),
    venue_name VARCHAR(100),
    city VARCHAR(50),
    match_date DATE,
    series_name TEXT,
    current_status TEXT,
    match_status VARCHAR(50),
    winning_team VARCHAR(100),
    toss_winner VARCHAR(100),
    toss_decision VARCHAR(20),
    victory_margin VARCHAR(100),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	// Partial index so feed rows without a provider id never collide.
	`CREATE UNIQUE INDEX IF NOT EXISTS matches_cricbuzz_match_id_key
    ON matches (cricbuzz_match_id) WHERE cricbuzz_match_id IS NOT NULL`,
}

// Bootstrap creates the schema when missing. Statements are idempotent so a
// restart against an existing database is a no-op.
func Bootstrap(ctx context.Context, db *sqlx.DB) error {
	for _, statement := range bootstrapStatements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}

// BootstrapSeed fills an empty database with the reference teams, venues and
// players so the analytics catalog has data to chew on from the first boot.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM players`); err != nil {
		return fmt.Errorf("count players for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (team_name, country, matches_played, matches_won, matches_lost, win_percentage)
VALUES (:team_name, :country, :matches_played, :matches_won, :matches_lost, :win_percentage)
ON CONFLICT (team_name) DO NOTHING`, map[string]any{
			"team_name":      t.Name,
			"country":        t.Country,
			"matches_played": t.MatchesPlayed,
			"matches_won":    t.MatchesWon,
			"matches_lost":   t.MatchesLost,
			"win_percentage": t.WinPercentage,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.Name, err)
		}
	}

	for _, v := range memory.SeedVenues() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO venues (venue_name, city, country, capacity)
VALUES (:venue_name, :city, :country, :capacity)
ON CONFLICT (venue_name, city) DO NOTHING`, map[string]any{
			"venue_name": v.Name,
			"city":       v.City,
			"country":    v.Country,
			"capacity":   v.Capacity,
		})
		if err != nil {
			return fmt.Errorf("bind seed venue %s query: %w", v.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed venue %s: %w", v.Name, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (name, country, playing_role, batting_style, bowling_style,
    total_runs, total_wickets, batting_average, bowling_average, economy_rate,
    strike_rate, matches_played, centuries, fifties)
VALUES (:name, :country, :playing_role, :batting_style, :bowling_style,
    :total_runs, :total_wickets, :batting_average, :bowling_average, :economy_rate,
    :strike_rate, :matches_played, :centuries, :fifties)`, map[string]any{
			"name":            p.Name,
			"country":         p.Country,
			"playing_role":    p.PlayingRole,
			"batting_style":   p.BattingStyle,
			"bowling_style":   p.BowlingStyle,
			"total_runs":      p.TotalRuns,
			"total_wickets":   p.TotalWickets,
			"batting_average": p.BattingAverage,
			"bowling_average": p.BowlingAverage,
			"economy_rate":    p.EconomyRate,
			"strike_rate":     p.StrikeRate,
			"matches_played":  p.MatchesPlayed,
			"centuries":       p.Centuries,
			"fifties":         p.Fifties,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
