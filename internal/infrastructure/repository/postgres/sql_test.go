package postgres

import (
	"database/sql"
	"testing"
	"time"
)

func TestStringToNullString(t *testing.T) {
	t.Run("maps empty to null", func(t *testing.T) {
		got := stringToNullString("   ")
		if got.Valid {
			t.Fatalf("expected invalid null string, got %+v", got)
		}
	})

	t.Run("trims and keeps value", func(t *testing.T) {
		got := stringToNullString(" Wankhede Stadium ")
		if !got.Valid || got.String != "Wankhede Stadium" {
			t.Fatalf("unexpected null string: %+v", got)
		}
	})
}

func TestPtrToNullInt64(t *testing.T) {
	t.Run("nil pointer is null", func(t *testing.T) {
		if got := ptrToNullInt64(nil); got.Valid {
			t.Fatalf("expected null, got %+v", got)
		}
	})

	t.Run("round trips through pointer", func(t *testing.T) {
		id := int64(12345)
		got := ptrToNullInt64(&id)
		if !got.Valid || got.Int64 != 12345 {
			t.Fatalf("unexpected null int: %+v", got)
		}
		back := nullInt64ToPtr(got)
		if back == nil || *back != 12345 {
			t.Fatalf("unexpected pointer: %v", back)
		}
	})
}

func TestTimeToNullTime(t *testing.T) {
	if got := timeToNullTime(time.Time{}); got.Valid {
		t.Fatalf("expected zero time to map to null, got %+v", got)
	}

	when := time.Date(2024, 8, 28, 9, 30, 0, 0, time.UTC)
	got := timeToNullTime(when)
	if !got.Valid || !got.Time.Equal(when) {
		t.Fatalf("unexpected null time: %+v", got)
	}
	if back := nullTimeToTime(got); !back.Equal(when) {
		t.Fatalf("unexpected time: %v", back)
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows to count as not found")
	}
	if isNotFound(nil) {
		t.Fatalf("expected nil to not count as not found")
	}
}
