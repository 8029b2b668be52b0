package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/cricketlabs/livestats/external/cricbuzz"
	"github.com/cricketlabs/livestats/internal/infrastructure/repository/memory"
	"github.com/cricketlabs/livestats/internal/platform/logging"
	"github.com/cricketlabs/livestats/internal/usecase"
)

type stubFeedProvider struct {
	payload map[string]any
}

func (p stubFeedProvider) FetchRecentMatches(context.Context) map[string]any { return p.payload }
func (p stubFeedProvider) FetchLiveMatches(context.Context) map[string]any   { return p.payload }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	matchRepo := memory.NewMatchRepository()
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	venueRepo := memory.NewVenueRepository(memory.SeedVenues())

	logger := logging.NewNop()
	feedSync := usecase.NewFeedSyncService(
		stubFeedProvider{payload: cricbuzz.FallbackPayload()},
		cricbuzz.Normalize,
		matchRepo,
		logger,
	)

	handler := NewHandler(
		feedSync,
		usecase.NewMatchService(matchRepo),
		usecase.NewPlayerService(playerRepo),
		usecase.NewTeamService(teamRepo),
		usecase.NewVenueService(venueRepo),
		usecase.NewAnalyticsService(memory.NewAnalyticsRepository()),
		usecase.NewDashboardService(playerRepo, teamRepo, venueRepo, matchRepo, feedSync),
		usecase.NewExportService(playerRepo),
		nil,
		logger,
	)
	return NewRouter(handler, logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       any    `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	raw, err := sonic.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("remarshal data: %v", err)
	}
	if err := sonic.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRouter_FeedSyncThenRecentMatches(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/feed/sync?source=recent", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var sync syncResultDTO
	decodeData(t, rec, &sync)
	if sync.Source != "recent" || sync.Total != 2 || sync.Stored != 2 || sync.Failed != 0 {
		t.Fatalf("unexpected sync result: %+v", sync)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/matches/recent", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var matches []matchDTO
	decodeData(t, rec, &matches)
	if len(matches) != 2 {
		t.Fatalf("expected 2 feed matches, got %d", len(matches))
	}
	for _, m := range matches {
		if m.ExternalID == nil {
			t.Fatalf("expected provider id on feed match: %+v", m)
		}
	}
}

func TestRouter_LiveMatchesServedFromFeed(t *testing.T) {
	router := newTestRouter(t)

	// No sync has run: live matches still come back because the handler hits
	// the feed directly instead of the store.
	rec := doRequest(t, router, http.MethodGet, "/v1/matches/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var live []liveMatchDTO
	decodeData(t, rec, &live)
	if len(live) != 2 {
		t.Fatalf("expected 2 live feed matches, got %d", len(live))
	}
	for _, m := range live {
		if m.Description == "" {
			t.Fatalf("expected normalized feed record, got %+v", m)
		}
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/matches", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var stored []matchDTO
	decodeData(t, rec, &stored)
	if len(stored) != 0 {
		t.Fatalf("live listing must not persist matches, found %d stored", len(stored))
	}
}

func TestRouter_FeedSyncUnknownSource(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/feed/sync?source=archive", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_PlayerCRUD(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Shubman Gill","country":"India","playingRole":"Batsman","battingStyle":"Right-hand bat","totalRuns":5500,"battingAverage":41.30,"strikeRate":88.10,"matchesPlayed":120,"centuries":12,"fifties":30}`
	rec := doRequest(t, router, http.MethodPost, "/v1/players", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created playerDTO
	decodeData(t, rec, &created)
	if created.ID == 0 || created.Name != "Shubman Gill" {
		t.Fatalf("unexpected created player: %+v", created)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/players/"+strconvID(created.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodDelete, "/v1/players/"+strconvID(created.ID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/players/"+strconvID(created.ID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", rec.Code)
	}
}

func TestRouter_PlayerRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/players", `{"name":"X","battingHand":"left"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_BadPathID(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_PlayersExportCSV(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/players/export?country=India", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", ct)
	}
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 indian players, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "player_id,name,country") {
		t.Fatalf("unexpected csv header: %q", lines[0])
	}
}

func TestRouter_AnalyticsCatalogAndMemoryStore(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/analytics/queries", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var summaries []querySummaryDTO
	decodeData(t, rec, &summaries)
	if len(summaries) != 25 {
		t.Fatalf("expected 25 catalog queries, got %d", len(summaries))
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/analytics/queries/team-wins", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 without sql store, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/analytics/queries/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown query, got %d", rec.Code)
	}
}

func TestRouter_DashboardSummary(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/feed/sync", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/dashboard/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var summary dashboardSummaryDTO
	decodeData(t, rec, &summary)
	if summary.Players != 10 || summary.Teams != 8 || summary.Venues != 8 {
		t.Fatalf("unexpected reference counts: %+v", summary)
	}
	if summary.FeedMatches != 2 || summary.LastSync == nil {
		t.Fatalf("expected feed matches and last sync: %+v", summary)
	}
}

func strconvID(id int64) string {
	return strconv.FormatInt(id, 10)
}
