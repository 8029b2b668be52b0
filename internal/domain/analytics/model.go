package analytics

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Query is one curated read-only analytics query. SQL text is defined
// server-side only; callers select queries by id and never submit SQL.
type Query struct {
	ID          string
	Title       string
	Description string
	Level       string
	SQL         string
}

// Row is one result row keyed by output column name.
type Row map[string]any
