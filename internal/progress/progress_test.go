package progress

import (
	"slices"
	"testing"
)

func TestOrEmpty(t *testing.T) {
	rec := OrEmpty(nil, "u1", "l1")
	if rec.Completed || len(rec.CompletedTaskKeys) != 0 {
		t.Fatalf("expected empty record, got %+v", rec)
	}
	if rec.UserID != "u1" || rec.LessonID != "l1" {
		t.Fatalf("expected ids to be filled, got %+v", rec)
	}

	stored := &Record{UserID: "u1", LessonID: "l1", Completed: true, CompletedTaskKeys: []string{"b", "a", "b", ""}}
	rec = OrEmpty(stored, "u1", "l1")
	if !rec.Completed {
		t.Fatal("expected stored completion to be kept")
	}
	if !slices.Equal(rec.CompletedTaskKeys, []string{"a", "b"}) {
		t.Fatalf("expected normalized keys, got %v", rec.CompletedTaskKeys)
	}
	if len(stored.CompletedTaskKeys) != 4 {
		t.Fatal("OrEmpty must not modify its argument")
	}
}

func TestHasKey(t *testing.T) {
	rec := Record{CompletedTaskKeys: NormalizeKeys([]string{"pull-report", "budget"})}
	if !rec.HasKey("budget") || !rec.HasKey("pull-report") {
		t.Fatal("expected both keys present")
	}
	if rec.HasKey("dispute") {
		t.Fatal("unexpected key present")
	}
}
