package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/cricketlabs/livestats/internal/domain/match"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
)

type fakeFeedProvider struct {
	recentCalls int
	liveCalls   int
	payload     map[string]any
}

func (p *fakeFeedProvider) FetchRecentMatches(context.Context) map[string]any {
	p.recentCalls++
	return p.payload
}

func (p *fakeFeedProvider) FetchLiveMatches(context.Context) map[string]any {
	p.liveCalls++
	return p.payload
}

type failingMatchRepo struct {
	match.Repository
	failIDs map[int64]bool
	stored  []match.Record
}

func (r *failingMatchRepo) UpsertFromFeed(_ context.Context, rec match.Record) error {
	if rec.ExternalID != nil && r.failIDs[*rec.ExternalID] {
		return fmt.Errorf("store unavailable")
	}
	r.stored = append(r.stored, rec)
	return nil
}

func feedRecords(ids ...int64) []match.Record {
	out := make([]match.Record, 0, len(ids))
	for _, id := range ids {
		v := id
		out = append(out, match.Record{
			ExternalID:  &v,
			Description: fmt.Sprintf("Match %d", id),
			Team1Name:   "India",
			Team2Name:   "Australia",
		})
	}
	return out
}

func passthroughNormalizer(records []match.Record) FeedNormalizer {
	return func(any) ([]match.Record, error) {
		return records, nil
	}
}

func TestFeedSyncService_StoresAllRecordsInOrder(t *testing.T) {
	t.Parallel()

	provider := &fakeFeedProvider{payload: map[string]any{}}
	repo := &failingMatchRepo{failIDs: map[int64]bool{}}
	svc := NewFeedSyncService(provider, passthroughNormalizer(feedRecords(1, 2, 3)), repo, nil)

	result, err := svc.Sync(context.Background(), "")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if provider.recentCalls != 1 || provider.liveCalls != 0 {
		t.Fatalf("expected default source recent, got recent=%d live=%d", provider.recentCalls, provider.liveCalls)
	}
	if result.Total != 3 || result.Stored != 3 || result.Failed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(repo.stored) != 3 || *repo.stored[0].ExternalID != 1 || *repo.stored[2].ExternalID != 3 {
		t.Fatalf("expected ordered stores, got %+v", repo.stored)
	}

	last, ok := svc.LastResult()
	if !ok || last.Stored != 3 {
		t.Fatalf("expected last result tracked, got ok=%v result=%+v", ok, last)
	}
}

func TestFeedSyncService_PartialFailureKeepsGoing(t *testing.T) {
	t.Parallel()

	provider := &fakeFeedProvider{payload: map[string]any{}}
	repo := &failingMatchRepo{failIDs: map[int64]bool{2: true}}
	svc := NewFeedSyncService(provider, passthroughNormalizer(feedRecords(1, 2, 3)), repo, nil)

	result, err := svc.Sync(context.Background(), FeedSourceLive)
	if err != nil {
		t.Fatalf("expected partial failure to not error, got %v", err)
	}
	if provider.liveCalls != 1 {
		t.Fatalf("expected live fetch, got %d", provider.liveCalls)
	}
	if result.Total != 3 || result.Stored != 2 || result.Failed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestFeedSyncService_TotalFailureReportsDependency(t *testing.T) {
	t.Parallel()

	provider := &fakeFeedProvider{payload: map[string]any{}}
	repo := &failingMatchRepo{failIDs: map[int64]bool{1: true, 2: true}}
	svc := NewFeedSyncService(provider, passthroughNormalizer(feedRecords(1, 2)), repo, nil)

	result, err := svc.Sync(context.Background(), FeedSourceRecent)
	if !stderrors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if result.Total != 2 || result.Stored != 0 || result.Failed != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestFeedSyncService_EmptyFeedIsSuccess(t *testing.T) {
	t.Parallel()

	provider := &fakeFeedProvider{payload: map[string]any{}}
	repo := &failingMatchRepo{failIDs: map[int64]bool{}}
	svc := NewFeedSyncService(provider, passthroughNormalizer(nil), repo, nil)

	result, err := svc.Sync(context.Background(), FeedSourceRecent)
	if err != nil {
		t.Fatalf("expected empty feed to succeed, got %v", err)
	}
	if result.Total != 0 || result.Stored != 0 || result.Failed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestFeedSyncService_RejectsUnknownSource(t *testing.T) {
	t.Parallel()

	provider := &fakeFeedProvider{payload: map[string]any{}}
	repo := &failingMatchRepo{failIDs: map[int64]bool{}}
	svc := NewFeedSyncService(provider, passthroughNormalizer(nil), repo, nil)

	if _, err := svc.Sync(context.Background(), "archive"); !stderrors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestFeedSyncService_LiveMatchesComeFromFeedNotStore(t *testing.T) {
	t.Parallel()

	provider := &fakeFeedProvider{payload: map[string]any{}}
	repo := &failingMatchRepo{failIDs: map[int64]bool{}}
	svc := NewFeedSyncService(provider, passthroughNormalizer(feedRecords(7, 8)), repo, nil)

	records, err := svc.LiveMatches(context.Background())
	if err != nil {
		t.Fatalf("live matches: %v", err)
	}
	if provider.liveCalls != 1 || provider.recentCalls != 0 {
		t.Fatalf("expected a single live fetch, got recent=%d live=%d", provider.recentCalls, provider.liveCalls)
	}
	if len(records) != 2 || *records[0].ExternalID != 7 {
		t.Fatalf("unexpected live records: %+v", records)
	}
	if len(repo.stored) != 0 {
		t.Fatalf("live listing must not store records, got %d stored", len(repo.stored))
	}
}

func TestFeedSyncService_NilExternalIDAlwaysInserts(t *testing.T) {
	t.Parallel()

	repo := memory.NewMatchRepository()
	provider := &fakeFeedProvider{payload: map[string]any{}}

	rec := match.Record{
		Description: "Practice match",
		Team1Name:   "India",
		Team2Name:   "Australia",
		State:       "Preview",
	}
	svc := NewFeedSyncService(provider, passthroughNormalizer([]match.Record{rec, rec}), repo, nil)

	result, err := svc.Sync(context.Background(), FeedSourceRecent)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Stored != 2 {
		t.Fatalf("expected both records stored, got %+v", result)
	}

	count, err := repo.Count(context.Background())
	if err != nil || count != 2 {
		t.Fatalf("expected two distinct rows for records without a provider id, got count=%d err=%v", count, err)
	}
}

func TestFeedSyncService_DuplicateExternalIDUpdatesStatusOnly(t *testing.T) {
	t.Parallel()

	repo := memory.NewMatchRepository()
	provider := &fakeFeedProvider{payload: map[string]any{}}

	id := int64(12345)
	first := match.Record{
		ExternalID:  &id,
		Description: "1st Test",
		Team1Name:   "India",
		Team2Name:   "Australia",
		State:       "Live",
		Status:      "Day 1 - India 245/4 (75.0 Ovs)",
	}
	second := first
	second.Description = "changed description"
	second.State = "Complete"
	second.Status = "India won by 8 wickets"

	svc := NewFeedSyncService(provider, passthroughNormalizer([]match.Record{first, second}), repo, nil)
	result, err := svc.Sync(context.Background(), FeedSourceRecent)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Stored != 2 {
		t.Fatalf("expected both records counted as stored, got %+v", result)
	}

	count, err := repo.Count(context.Background())
	if err != nil || count != 1 {
		t.Fatalf("expected a single stored row, got count=%d err=%v", count, err)
	}
	rows, err := repo.ListFeedSourced(context.Background(), 10)
	if err != nil || len(rows) != 1 {
		t.Fatalf("list feed rows: %v", err)
	}
	got := rows[0]
	if got.Description != "1st Test" {
		t.Fatalf("expected description frozen at first sight, got %q", got.Description)
	}
	if got.State != "Complete" || got.Status != "India won by 8 wickets" {
		t.Fatalf("expected live fields refreshed, got state=%q status=%q", got.State, got.Status)
	}
}
