package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_id", "name").
		From("players").
		Where(Eq("country", "India"), IsNull("deleted_at")).
		OrderBy("player_id").
		Limit(10).
		Offset(20).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_id, name FROM players WHERE country = $1 AND deleted_at IS NULL ORDER BY player_id LIMIT 10 OFFSET 20"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "India" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("team_name", "country").
		Values("India", "India").
		Suffix("RETURNING team_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (team_name, country) VALUES ($1, $2) RETURNING team_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "India" || args[1] != "India" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("matches").
		Set("current_status", "Stumps").
		SetExpr("match_status", "COALESCE(?, match_status)", "Day 1 Complete").
		Where(Eq("match_id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE matches SET current_status = $1, match_status = COALESCE($2, match_status) WHERE match_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Stumps" || args[1] != "Day 1 Complete" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInCondition_EmptyValuesNeverMatch(t *testing.T) {
	query, args, err := Select("match_id").
		From("matches").
		Where(In("match_format", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id FROM matches WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
