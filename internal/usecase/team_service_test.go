package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/cricketlabs/livestats/internal/domain/team"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
)

func TestTeamService_CreateComputesWinPercentage(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(memory.NewTeamRepository(nil))

	created, err := svc.CreateTeam(context.Background(), team.Team{
		Name:          "Afghanistan",
		Country:       "Afghanistan",
		MatchesPlayed: 200,
		MatchesWon:    90,
		MatchesLost:   100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.WinPercentage != 45 {
		t.Fatalf("expected win percentage 45, got %v", created.WinPercentage)
	}
}

func TestTeamService_RejectsInconsistentCounts(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(memory.NewTeamRepository(nil))

	_, err := svc.CreateTeam(context.Background(), team.Team{
		Name:          "Ireland",
		MatchesPlayed: 10,
		MatchesWon:    8,
		MatchesLost:   5,
	})
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestTeamService_ListFiltersByCountry(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	items, err := svc.ListTeams(context.Background(), team.ListFilter{Country: "India"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "India" {
		t.Fatalf("unexpected filtered teams: %+v", items)
	}
}

func TestTeamService_UpdateMissingTeam(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(memory.NewTeamRepository(nil))

	_, err := svc.UpdateTeam(context.Background(), team.Team{ID: 99, Name: "Zimbabwe"})
	if !stderrors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
