package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/cricketlabs/livestats/internal/domain/match"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type MatchService struct {
	matchRepo match.Repository
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo}
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	filter.Limit, filter.Offset = normalizeWindow(filter.Limit, filter.Offset)
	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// ListRecentMatches returns the latest feed-sourced matches regardless of
// state, newest ingested first.
func (s *MatchService) ListRecentMatches(ctx context.Context, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListRecentMatches")
	defer span.End()

	limit, _ = normalizeWindow(limit, 0)
	items, err := s.matchRepo.ListFeedSourced(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}
	item, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, match.ErrNotFound) {
			return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
		}
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	return item, nil
}

func (s *MatchService) CreateMatch(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	if err := validateMatch(m); err != nil {
		return match.Match{}, err
	}
	created, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}

func (s *MatchService) UpdateMatch(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	if m.ID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}
	if err := validateMatch(m); err != nil {
		return match.Match{}, err
	}
	updated, err := s.matchRepo.Update(ctx, m)
	if err != nil {
		if stderrors.Is(err, match.ErrNotFound) {
			return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, m.ID)
		}
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return updated, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: match id must be greater than zero", ErrInvalidInput)
	}
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, match.ErrNotFound) {
			return fmt.Errorf("%w: match=%d", ErrNotFound, id)
		}
		return fmt.Errorf("delete match: %w", err)
	}
	return nil
}

func validateMatch(m match.Match) error {
	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: match description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(m.Team1Name) == "" || strings.TrimSpace(m.Team2Name) == "" {
		return fmt.Errorf("%w: both team names are required", ErrInvalidInput)
	}
	return nil
}

func normalizeWindow(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
