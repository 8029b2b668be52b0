package usecase

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/match"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
)

func TestMatchService_CreateValidation(t *testing.T) {
	t.Parallel()

	svc := NewMatchService(memory.NewMatchRepository())

	_, err := svc.CreateMatch(context.Background(), match.Match{Team1Name: "India", Team2Name: "Australia"})
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing description, got %v", err)
	}

	_, err = svc.CreateMatch(context.Background(), match.Match{Description: "1st ODI", Team1Name: "India"})
	if !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for missing team, got %v", err)
	}
}

func TestMatchService_CrudRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewMatchService(memory.NewMatchRepository())
	ctx := context.Background()

	created, err := svc.CreateMatch(ctx, match.Match{
		Description: "1st ODI",
		Format:      "ODI",
		Team1Name:   "India",
		Team2Name:   "Australia",
		MatchDate:   time.Date(2024, 8, 28, 0, 0, 0, 0, time.UTC),
		State:       "Upcoming",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", created.ID)
	}

	created.WinningTeam = "India"
	created.State = "Complete"
	updated, err := svc.UpdateMatch(ctx, created)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.WinningTeam != "India" || updated.State != "Complete" {
		t.Fatalf("unexpected updated match: %+v", updated)
	}

	got, err := svc.GetMatch(ctx, created.ID)
	if err != nil || got.Description != "1st ODI" {
		t.Fatalf("get: %+v err=%v", got, err)
	}

	if err := svc.DeleteMatch(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetMatch(ctx, created.ID); !stderrors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestMatchService_GetRejectsBadID(t *testing.T) {
	t.Parallel()

	svc := NewMatchService(memory.NewMatchRepository())
	if _, err := svc.GetMatch(context.Background(), 0); !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestMatchService_RecentListingIsFeedSourcedOnly(t *testing.T) {
	t.Parallel()

	repo := memory.NewMatchRepository()
	ctx := context.Background()

	liveID := int64(101)
	doneID := int64(102)
	records := []match.Record{
		{ExternalID: &liveID, Description: "3rd T20I", State: "Live", Status: "India 98/2 (11.0 Ovs)", Team1Name: "India", Team2Name: "England"},
		{ExternalID: &doneID, Description: "2nd T20I", State: "Complete", Status: "England won by 5 runs", Team1Name: "India", Team2Name: "England"},
	}
	for _, rec := range records {
		if err := repo.UpsertFromFeed(ctx, rec); err != nil {
			t.Fatalf("seed feed row: %v", err)
		}
	}
	manual, err := repo.Create(ctx, match.Match{Description: "Tour match", Team1Name: "India A", Team2Name: "England Lions"})
	if err != nil {
		t.Fatalf("seed manual row: %v", err)
	}

	svc := NewMatchService(repo)

	recent, err := svc.ListRecentMatches(ctx, 10)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 feed-sourced rows, got %d", len(recent))
	}
	for _, item := range recent {
		if item.ID == manual.ID {
			t.Fatalf("manual rows must not appear in recent feed listing")
		}
	}
}
