package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/cricketlabs/livestats/internal/domain/player"
)

var validPlayingRoles = map[string]struct{}{
	player.RoleBatsman:             {},
	player.RoleBowler:              {},
	player.RoleAllRounder:          {},
	player.RoleWicketKeeperBatsman: {},
}

type PlayerService struct {
	playerRepo player.Repository
}

func NewPlayerService(playerRepo player.Repository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	filter.Limit, filter.Offset = normalizeWindow(filter.Limit, filter.Offset)
	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	item, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, player.ErrNotFound) {
			return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
		}
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	if err := validatePlayer(p); err != nil {
		return player.Player{}, err
	}
	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	if p.ID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	if err := validatePlayer(p); err != nil {
		return player.Player{}, err
	}
	updated, err := s.playerRepo.Update(ctx, p)
	if err != nil {
		if stderrors.Is(err, player.ErrNotFound) {
			return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, p.ID)
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return updated, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, player.ErrNotFound) {
			return fmt.Errorf("%w: player=%d", ErrNotFound, id)
		}
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func validatePlayer(p player.Player) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if p.PlayingRole != "" {
		if _, ok := validPlayingRoles[p.PlayingRole]; !ok {
			return fmt.Errorf("%w: unknown playing role %q", ErrInvalidInput, p.PlayingRole)
		}
	}
	if p.TotalRuns < 0 || p.TotalWickets < 0 || p.MatchesPlayed < 0 {
		return fmt.Errorf("%w: career aggregates cannot be negative", ErrInvalidInput)
	}
	return nil
}
