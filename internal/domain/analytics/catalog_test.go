package analytics

import (
	"strings"
	"testing"
)

func TestCatalog_EveryQueryIsComplete(t *testing.T) {
	t.Parallel()

	queries := Catalog()
	if len(queries) != 25 {
		t.Fatalf("expected 25 queries, got %d", len(queries))
	}

	seen := map[string]bool{}
	for _, q := range queries {
		if q.ID == "" || q.Title == "" || q.Description == "" {
			t.Fatalf("incomplete query metadata: %+v", q)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate query id %q", q.ID)
		}
		seen[q.ID] = true

		switch q.Level {
		case LevelBeginner, LevelIntermediate, LevelAdvanced:
		default:
			t.Fatalf("query %q has unknown level %q", q.ID, q.Level)
		}
	}
}

func TestCatalog_SQLIsReadOnly(t *testing.T) {
	t.Parallel()

	for _, q := range Catalog() {
		sql := strings.TrimSpace(q.SQL)
		if sql == "" {
			t.Fatalf("query %q has empty sql", q.ID)
		}
		if !strings.HasPrefix(sql, "SELECT") && !strings.HasPrefix(sql, "WITH") {
			t.Fatalf("query %q is not a read-only statement: %q", q.ID, sql[:min(40, len(sql))])
		}
		if strings.Contains(sql, ";") {
			t.Fatalf("query %q contains a statement separator", q.ID)
		}
		if strings.Contains(sql, "$") {
			t.Fatalf("query %q expects parameters, catalog queries take none", q.ID)
		}
	}
}

func TestCatalog_LevelsOrderedByComplexity(t *testing.T) {
	t.Parallel()

	rank := map[string]int{LevelBeginner: 0, LevelIntermediate: 1, LevelAdvanced: 2}
	prev := 0
	for _, q := range Catalog() {
		r := rank[q.Level]
		if r < prev {
			t.Fatalf("query %q breaks level ordering", q.ID)
		}
		prev = r
	}
}
