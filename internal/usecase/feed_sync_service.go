package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cricketlabs/livestats/internal/domain/match"
	idgen "github.com/cricketlabs/livestats/internal/platform/id"
	"github.com/cricketlabs/livestats/internal/platform/logging"
)

const (
	FeedSourceRecent = "recent"
	FeedSourceLive   = "live"
)

// FeedProvider fetches raw feed payloads. Implementations never fail; a
// provider outage is expected to surface as a canned payload instead.
type FeedProvider interface {
	FetchRecentMatches(ctx context.Context) map[string]any
	FetchLiveMatches(ctx context.Context) map[string]any
}

// FeedNormalizer flattens a raw payload into ordered match records.
type FeedNormalizer func(raw any) ([]match.Record, error)

// SyncResult summarizes one ingestion run.
type SyncResult struct {
	RunID      string
	Source     string
	Total      int
	Stored     int
	Failed     int
	FinishedAt time.Time
}

type FeedSyncService struct {
	provider  FeedProvider
	normalize FeedNormalizer
	matchRepo match.Repository
	ids       idgen.Generator
	logger    *logging.Logger

	mu         sync.Mutex
	lastResult *SyncResult
}

func NewFeedSyncService(
	provider FeedProvider,
	normalize FeedNormalizer,
	matchRepo match.Repository,
	logger *logging.Logger,
) *FeedSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FeedSyncService{
		provider:  provider,
		normalize: normalize,
		matchRepo: matchRepo,
		ids:       idgen.NewRandomGenerator(),
		logger:    logger,
	}
}

// Sync pulls one feed snapshot and stores every record sequentially, in feed
// order. Individual record failures are counted, not fatal; the run errors
// only when nothing could be stored at all.
func (s *FeedSyncService) Sync(ctx context.Context, source string) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedSyncService.Sync")
	defer span.End()

	source = strings.TrimSpace(strings.ToLower(source))
	if source == "" {
		source = FeedSourceRecent
	}

	var payload map[string]any
	switch source {
	case FeedSourceRecent:
		payload = s.provider.FetchRecentMatches(ctx)
	case FeedSourceLive:
		payload = s.provider.FetchLiveMatches(ctx)
	default:
		return SyncResult{}, fmt.Errorf("%w: unknown feed source %q", ErrInvalidInput, source)
	}

	records, err := s.normalize(payload)
	if err != nil {
		return SyncResult{}, fmt.Errorf("%w: normalize feed payload: %v", ErrDependencyUnavailable, err)
	}

	result := SyncResult{Source: source, Total: len(records)}
	if runID, idErr := s.ids.NewID(); idErr == nil {
		result.RunID = runID
	}
	for _, rec := range records {
		if s.UpsertMatch(ctx, rec) {
			result.Stored++
		} else {
			result.Failed++
		}
	}
	result.FinishedAt = time.Now().UTC()

	s.mu.Lock()
	s.lastResult = &result
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "feed sync finished",
		"run_id", result.RunID,
		"source", source,
		"total", result.Total,
		"stored", result.Stored,
		"failed", result.Failed,
	)

	if result.Total > 0 && result.Stored == 0 {
		return result, fmt.Errorf("%w: all %d feed records failed to store", ErrDependencyUnavailable, result.Total)
	}
	return result, nil
}

// LiveMatches fetches the live feed and normalizes it without touching the
// store, so callers always see the feed's current view even before any sync.
func (s *FeedSyncService) LiveMatches(ctx context.Context) ([]match.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FeedSyncService.LiveMatches")
	defer span.End()

	records, err := s.normalize(s.provider.FetchLiveMatches(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: normalize feed payload: %v", ErrDependencyUnavailable, err)
	}
	return records, nil
}

// UpsertMatch stores one record and reports success. Store failures are
// logged and absorbed so one bad record never aborts a batch.
func (s *FeedSyncService) UpsertMatch(ctx context.Context, rec match.Record) bool {
	if err := s.matchRepo.UpsertFromFeed(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "upsert feed match failed",
			"external_id", rec.ExternalID,
			"description", rec.Description,
			"error", err,
		)
		return false
	}
	return true
}

// LastResult reports the most recent sync run, if any happened yet.
func (s *FeedSyncService) LastResult() (SyncResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastResult == nil {
		return SyncResult{}, false
	}
	return *s.lastResult, true
}
