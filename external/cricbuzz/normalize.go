package cricbuzz

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/cricketlabs/livestats/internal/domain/match"
)

// ErrStructural reports that a feed payload is not an object at the top level
// and cannot be traversed at all. Anything less broken than that degrades to
// skipped branches, never to an error.
var ErrStructural = crerr.New("cricbuzz: structural payload error")

// Normalize flattens a raw feed payload into match records, preserving the
// provider's ordering across series and type groups. Malformed branches are
// skipped; a payload without a typeMatches list yields an empty slice.
func Normalize(raw any) ([]match.Record, error) {
	payload, ok := raw.(map[string]any)
	if !ok {
		return nil, crerr.Wrapf(ErrStructural, "expected object payload, got %T", raw)
	}

	records := make([]match.Record, 0, 16)
	for _, typeEntry := range asSlice(payload["typeMatches"]) {
		typeMatch, ok := typeEntry.(map[string]any)
		if !ok {
			continue
		}
		for _, seriesEntry := range asSlice(typeMatch["seriesMatches"]) {
			seriesMatch, ok := seriesEntry.(map[string]any)
			if !ok {
				continue
			}
			// Entries without a seriesAdWrapper are ad slots, not series.
			wrapper, ok := seriesMatch["seriesAdWrapper"].(map[string]any)
			if !ok {
				continue
			}
			seriesName := getString(wrapper, "seriesName")
			for _, matchEntry := range asSlice(wrapper["matches"]) {
				matchItem, ok := matchEntry.(map[string]any)
				if !ok {
					continue
				}
				info, ok := matchItem["matchInfo"].(map[string]any)
				if !ok {
					continue
				}
				records = append(records, buildRecord(seriesName, info))
			}
		}
	}
	return records, nil
}

func buildRecord(seriesName string, info map[string]any) match.Record {
	team1, _ := info["team1"].(map[string]any)
	team2, _ := info["team2"].(map[string]any)
	venue, _ := info["venueInfo"].(map[string]any)

	return match.Record{
		ExternalID:  getInt64Ptr(info, "matchId"),
		Description: getString(info, "matchDesc"),
		Format:      getString(info, "matchFormat"),
		SeriesName:  seriesName,
		Team1Name:   getString(team1, "teamName"),
		Team2Name:   getString(team2, "teamName"),
		VenueName:   getString(venue, "ground"),
		City:        getString(venue, "city"),
		Status:      getString(info, "status"),
		State:       getString(info, "state"),
		StartDate:   getStringish(info, "startDate"),
	}
}

func asSlice(raw any) []any {
	items, _ := raw.([]any)
	return items
}

func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// getStringish also accepts numeric values; the provider sends startDate as a
// string of epoch milliseconds but numeric encodings show up in the wild.
func getStringish(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	switch typed := src[key].(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return strconv.FormatInt(int64(typed), 10)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

// getInt64Ptr returns nil when the key is absent or unparseable; feed entries
// without a provider match id are stored without one rather than dropped.
func getInt64Ptr(src map[string]any, key string) *int64 {
	if src == nil {
		return nil
	}
	raw, ok := src[key]
	if !ok || raw == nil {
		return nil
	}
	var value int64
	switch typed := raw.(type) {
	case float64:
		value = int64(typed)
	case float32:
		value = int64(typed)
	case int:
		value = int64(typed)
	case int64:
		value = typed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return nil
		}
		value = parsed
	default:
		return nil
	}
	return &value
}
