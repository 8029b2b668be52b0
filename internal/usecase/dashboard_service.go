package usecase

import (
	"context"
	"fmt"

	"github.com/cricketlabs/livestats/internal/domain/match"
	"github.com/cricketlabs/livestats/internal/domain/player"
	"github.com/cricketlabs/livestats/internal/domain/team"
	"github.com/cricketlabs/livestats/internal/domain/venue"
)

type DashboardSummary struct {
	Players     int64
	Teams       int64
	Venues      int64
	Matches     int64
	FeedMatches int64
	LastSync    *SyncResult
}

type DashboardService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	venueRepo  venue.Repository
	matchRepo  match.Repository
	feedSync   *FeedSyncService
}

func NewDashboardService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	venueRepo venue.Repository,
	matchRepo match.Repository,
	feedSync *FeedSyncService,
) *DashboardService {
	return &DashboardService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		venueRepo:  venueRepo,
		matchRepo:  matchRepo,
		feedSync:   feedSync,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (DashboardSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Summary")
	defer span.End()

	var out DashboardSummary
	var err error

	if out.Players, err = s.playerRepo.Count(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("count players: %w", err)
	}
	if out.Teams, err = s.teamRepo.Count(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("count teams: %w", err)
	}
	if out.Venues, err = s.venueRepo.Count(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("count venues: %w", err)
	}
	if out.Matches, err = s.matchRepo.Count(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("count matches: %w", err)
	}
	if out.FeedMatches, err = s.matchRepo.CountFeedSourced(ctx); err != nil {
		return DashboardSummary{}, fmt.Errorf("count feed matches: %w", err)
	}

	if s.feedSync != nil {
		if last, ok := s.feedSync.LastResult(); ok {
			out.LastSync = &last
		}
	}
	return out, nil
}
