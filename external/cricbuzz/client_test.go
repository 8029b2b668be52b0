package cricbuzz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchRecentMatchesUsesRapidAPIHeaders(t *testing.T) {
	t.Parallel()

	var gotKey, gotHost, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"typeMatches":[{"matchType":"International","seriesMatches":[{"seriesAdWrapper":{"seriesName":"Asia Cup 2024","matches":[{"matchInfo":{"matchId":9001,"matchDesc":"Qualifier","matchFormat":"ODI","state":"Live","status":"In progress"}}]}}]}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Host:    "cricbuzz-cricket.p.rapidapi.com",
	})

	payload := client.FetchRecentMatches(context.Background())
	if gotKey != "test-key" {
		t.Fatalf("expected api key header, got=%q", gotKey)
	}
	if gotHost != "cricbuzz-cricket.p.rapidapi.com" {
		t.Fatalf("expected host header, got=%q", gotHost)
	}
	if gotPath != "/matches/v1/recent" {
		t.Fatalf("expected recent path, got=%q", gotPath)
	}

	records, err := Normalize(payload)
	if err != nil {
		t.Fatalf("normalize fetched payload: %v", err)
	}
	if len(records) != 1 || records[0].SeriesName != "Asia Cup 2024" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestClient_FetchLiveMatchesHitsLivePath(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"typeMatches":[]}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})
	payload := client.FetchLiveMatches(context.Background())
	if gotPath != "/matches/v1/live" {
		t.Fatalf("expected live path, got=%q", gotPath)
	}
	if _, ok := payload["typeMatches"]; !ok {
		t.Fatalf("expected provider payload passthrough, got=%v", payload)
	}
}

func TestClient_FallsBackWithoutAPIKey(t *testing.T) {
	t.Parallel()

	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL})
	payload := client.FetchRecentMatches(context.Background())
	if requested {
		t.Fatalf("expected no outbound request without an api key")
	}
	assertFallbackPayload(t, payload)
}

func TestClient_FallsBackOnProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})
	assertFallbackPayload(t, client.FetchRecentMatches(context.Background()))
}

func TestClient_FallsBackOnMalformedJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"typeMatches": [`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})
	assertFallbackPayload(t, client.FetchLiveMatches(context.Background()))
}

func TestClient_FallsBackWhenProviderUnreachable(t *testing.T) {
	t.Parallel()

	// Closed server so the request fails at the transport layer.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})
	assertFallbackPayload(t, client.FetchRecentMatches(context.Background()))
}

func assertFallbackPayload(t *testing.T, payload map[string]any) {
	t.Helper()

	records, err := Normalize(payload)
	if err != nil {
		t.Fatalf("normalize fallback payload: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 fallback records, got=%d", len(records))
	}
	if records[0].ExternalID == nil || *records[0].ExternalID != 12345 {
		t.Fatalf("expected fallback match id 12345, got=%v", records[0].ExternalID)
	}
	if records[1].Status != "India won by 8 wickets" {
		t.Fatalf("unexpected fallback status: %q", records[1].Status)
	}
}
