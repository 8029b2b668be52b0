package usecase

import (
	"context"
	"testing"

	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
)

func TestDashboardService_SummaryCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := memory.NewMatchRepository()
	feedID := int64(555)
	if err := matchRepo.UpsertFromFeed(ctx, feedRecords(feedID)[0]); err != nil {
		t.Fatalf("seed feed row: %v", err)
	}

	provider := &fakeFeedProvider{payload: map[string]any{}}
	feedSync := NewFeedSyncService(provider, passthroughNormalizer(feedRecords(556)), matchRepo, nil)
	if _, err := feedSync.Sync(ctx, FeedSourceRecent); err != nil {
		t.Fatalf("sync: %v", err)
	}

	svc := NewDashboardService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewVenueRepository(memory.SeedVenues()),
		matchRepo,
		feedSync,
	)

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Players != 10 || summary.Teams != 8 || summary.Venues != 8 {
		t.Fatalf("unexpected reference counts: %+v", summary)
	}
	if summary.Matches != 2 || summary.FeedMatches != 2 {
		t.Fatalf("unexpected match counts: %+v", summary)
	}
	if summary.LastSync == nil || summary.LastSync.Stored != 1 {
		t.Fatalf("expected last sync surfaced, got %+v", summary.LastSync)
	}
}
