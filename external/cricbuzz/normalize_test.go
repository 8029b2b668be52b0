package cricbuzz

import (
	stderrors "errors"
	"testing"
)

func TestNormalize_RejectsNonObjectPayloads(t *testing.T) {
	t.Parallel()

	for _, raw := range []any{nil, "typeMatches", []any{map[string]any{}}, 42} {
		if _, err := Normalize(raw); !stderrors.Is(err, ErrStructural) {
			t.Fatalf("expected structural error for %T payload, got=%v", raw, err)
		}
	}
}

func TestNormalize_EmptyFeedYieldsEmptySlice(t *testing.T) {
	t.Parallel()

	payloads := []map[string]any{
		{},
		{"typeMatches": []any{}},
		{"typeMatches": "not-a-list"},
		{"typeMatches": nil},
	}
	for _, payload := range payloads {
		records, err := Normalize(payload)
		if err != nil {
			t.Fatalf("expected no error, got=%v", err)
		}
		if records == nil || len(records) != 0 {
			t.Fatalf("expected empty non-nil slice, got=%#v", records)
		}
	}
}

func TestNormalize_FlattensFallbackPayloadInOrder(t *testing.T) {
	t.Parallel()

	records, err := Normalize(FallbackPayload())
	if err != nil {
		t.Fatalf("normalize fallback payload: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got=%d", len(records))
	}

	first := records[0]
	if first.ExternalID == nil || *first.ExternalID != 12345 {
		t.Fatalf("expected first external id 12345, got=%v", first.ExternalID)
	}
	if first.Description != "1st Test" || first.Format != "TEST" {
		t.Fatalf("unexpected first record identity: %+v", first)
	}
	if first.SeriesName != "India vs Australia Test Series 2024" {
		t.Fatalf("unexpected series name: %q", first.SeriesName)
	}
	if first.Team1Name != "India" || first.Team2Name != "Australia" {
		t.Fatalf("unexpected teams: %q vs %q", first.Team1Name, first.Team2Name)
	}
	if first.VenueName != "Wankhede Stadium" || first.City != "Mumbai" {
		t.Fatalf("unexpected venue: %q / %q", first.VenueName, first.City)
	}
	if first.State != "Live" || first.Status != "Day 1 - India 245/4 (75.0 Ovs)" {
		t.Fatalf("unexpected state/status: %q / %q", first.State, first.Status)
	}

	second := records[1]
	if second.ExternalID == nil || *second.ExternalID != 12346 {
		t.Fatalf("expected second external id 12346, got=%v", second.ExternalID)
	}
	if second.State != "Complete" || second.Status != "India won by 8 wickets" {
		t.Fatalf("unexpected second state/status: %q / %q", second.State, second.Status)
	}
	if second.VenueName != "Eden Gardens" || second.City != "Kolkata" {
		t.Fatalf("unexpected second venue: %q / %q", second.VenueName, second.City)
	}
}

func TestNormalize_SkipsMalformedBranches(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"typeMatches": []any{
			"not-a-group",
			map[string]any{
				"matchType": "League",
				"seriesMatches": []any{
					map[string]any{"adDetail": map[string]any{"name": "banner"}},
					"garbage",
					map[string]any{
						"seriesAdWrapper": map[string]any{
							"seriesName": "Big Bash 2024",
							"matches": []any{
								map[string]any{"noMatchInfo": true},
								map[string]any{
									"matchInfo": map[string]any{
										"matchId":     float64(777),
										"matchDesc":   "Final",
										"matchFormat": "T20",
										"state":       "Preview",
										"status":      "Match starts at 18:00",
									},
								},
							},
						},
					},
				},
			},
		},
	}

	records, err := Normalize(payload)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record surviving malformed siblings, got=%d", len(records))
	}
	rec := records[0]
	if rec.ExternalID == nil || *rec.ExternalID != 777 {
		t.Fatalf("expected external id 777, got=%v", rec.ExternalID)
	}
	if rec.SeriesName != "Big Bash 2024" || rec.Description != "Final" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.VenueName != "" || rec.City != "" {
		t.Fatalf("expected empty venue fields when venueInfo is absent, got=%q/%q", rec.VenueName, rec.City)
	}
}

func TestNormalize_MissingMatchIDBecomesNilExternalID(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"typeMatches": []any{
			map[string]any{
				"seriesMatches": []any{
					map[string]any{
						"seriesAdWrapper": map[string]any{
							"seriesName": "Unknown Cup",
							"matches": []any{
								map[string]any{
									"matchInfo": map[string]any{
										"matchDesc": "3rd ODI",
										"startDate": float64(1724833800000),
									},
								},
							},
						},
					},
				},
			},
		},
	}

	records, err := Normalize(payload)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got=%d", len(records))
	}
	if records[0].ExternalID != nil {
		t.Fatalf("expected nil external id, got=%v", *records[0].ExternalID)
	}
	if records[0].StartDate != "1724833800000" {
		t.Fatalf("expected numeric startDate stringified, got=%q", records[0].StartDate)
	}
}

func TestRecordStartTimeParsing(t *testing.T) {
	t.Parallel()

	records, err := Normalize(FallbackPayload())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	start := records[0].StartTime()
	if start.IsZero() {
		t.Fatalf("expected RFC3339 startDate to parse, got zero time")
	}
	if got := start.Format("2006-01-02"); got != "2024-08-28" {
		t.Fatalf("expected start date 2024-08-28, got=%s", got)
	}
}
