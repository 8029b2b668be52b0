package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cricketlabs/livestats/internal/domain/venue"
	qb "github.com/cricketlabs/livestats/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) List(ctx context.Context, filter venue.ListFilter) ([]venue.Venue, error) {
	builder := qb.Select("*").From("venues")
	if filter.Country != "" {
		builder = builder.Where(qb.Eq("country", filter.Country))
	}
	if filter.MinCapacity > 0 {
		builder = builder.Where(qb.Expr("capacity >= ?", filter.MinCapacity))
	}
	query, args, err := builder.
		OrderBy("capacity DESC", "venue_id").
		Limit(filter.Limit).
		Offset(filter.Offset).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, venueFromTableModel(row))
	}
	return out, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (venue.Venue, error) {
	query, args, err := qb.Select("*").From("venues").
		Where(qb.Eq("venue_id", id)).
		ToSQL()
	if err != nil {
		return venue.Venue{}, fmt.Errorf("build select venue query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, venue.ErrNotFound
		}
		return venue.Venue{}, fmt.Errorf("select venue id=%d: %w", id, err)
	}
	return venueFromTableModel(row), nil
}

func (r *VenueRepository) Create(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	insertModel := venueInsertModel{
		Name:     v.Name,
		City:     v.City,
		Country:  v.Country,
		Capacity: v.Capacity,
	}
	query, args, err := qb.InsertModel("venues", insertModel, "RETURNING venue_id, created_at")
	if err != nil {
		return venue.Venue{}, fmt.Errorf("build create venue query: %w", err)
	}

	var out struct {
		ID        int64        `db:"venue_id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	if err := r.db.GetContext(ctx, &out, query, args...); err != nil {
		return venue.Venue{}, fmt.Errorf("create venue: %w", err)
	}
	v.ID = out.ID
	v.CreatedAt = nullTimeToTime(out.CreatedAt)
	return v, nil
}

func (r *VenueRepository) Update(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	query, args, err := qb.Update("venues").
		Set("venue_name", v.Name).
		Set("city", v.City).
		Set("country", v.Country).
		Set("capacity", v.Capacity).
		Where(qb.Eq("venue_id", v.ID)).
		ToSQL()
	if err != nil {
		return venue.Venue{}, fmt.Errorf("build update venue query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("update venue id=%d: %w", v.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return venue.Venue{}, fmt.Errorf("rows affected update venue: %w", err)
	}
	if affected == 0 {
		return venue.Venue{}, venue.ErrNotFound
	}
	return r.GetByID(ctx, v.ID)
}

func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE venue_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venue id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete venue: %w", err)
	}
	if affected == 0 {
		return venue.ErrNotFound
	}
	return nil
}

func (r *VenueRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM venues`); err != nil {
		return 0, fmt.Errorf("count venues: %w", err)
	}
	return count, nil
}
