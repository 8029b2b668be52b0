package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/cricketlabs/livestats/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) ListTeams(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	filter.Limit, filter.Offset = normalizeWindow(filter.Limit, filter.Offset)
	items, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	if id <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}
	item, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, team.ErrNotFound) {
			return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, id)
		}
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	return item, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, t team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	if err := validateTeam(t); err != nil {
		return team.Team{}, err
	}
	t.WinPercentage = winPercentage(t.MatchesWon, t.MatchesPlayed)
	created, err := s.teamRepo.Create(ctx, t)
	if err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return created, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, t team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	if t.ID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}
	if err := validateTeam(t); err != nil {
		return team.Team{}, err
	}
	t.WinPercentage = winPercentage(t.MatchesWon, t.MatchesPlayed)
	updated, err := s.teamRepo.Update(ctx, t)
	if err != nil {
		if stderrors.Is(err, team.ErrNotFound) {
			return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, t.ID)
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	return updated, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, team.ErrNotFound) {
			return fmt.Errorf("%w: team=%d", ErrNotFound, id)
		}
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

func validateTeam(t team.Team) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if t.MatchesWon+t.MatchesLost > t.MatchesPlayed {
		return fmt.Errorf("%w: wins plus losses cannot exceed matches played", ErrInvalidInput)
	}
	if t.MatchesPlayed < 0 || t.MatchesWon < 0 || t.MatchesLost < 0 {
		return fmt.Errorf("%w: match counts cannot be negative", ErrInvalidInput)
	}
	return nil
}

func winPercentage(won, played int) float64 {
	if played <= 0 {
		return 0
	}
	return float64(won) * 100 / float64(played)
}
