package storage

import (
	"testing"
	"time"

	"keyglow/input"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecorderFlushAggregates(t *testing.T) {
	db := openTestDB(t)
	r := NewRecorder(db)

	for i := 0; i < 5; i++ {
		r.Record(input.GroupNormal)
	}
	r.Record(input.GroupModifier)
	r.Record(input.GroupMouse)

	if got := r.Pending(); got != 7 {
		t.Fatalf("pending = %d, want 7", got)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := r.Pending(); got != 0 {
		t.Fatalf("pending after flush = %d, want 0", got)
	}

	stats, err := db.GetGroupStats(7)
	if err != nil {
		t.Fatalf("GetGroupStats: %v", err)
	}
	totals := map[string]int64{}
	for _, s := range stats {
		totals[s.Group] = s.Presses
	}
	if totals[string(input.GroupNormal)] != 5 {
		t.Fatalf("normal presses = %d, want 5", totals[string(input.GroupNormal)])
	}
	if totals[string(input.GroupModifier)] != 1 || totals[string(input.GroupMouse)] != 1 {
		t.Fatalf("unexpected group totals: %v", totals)
	}
}

func TestFlushAccumulatesAcrossBatches(t *testing.T) {
	db := openTestDB(t)
	r := NewRecorder(db)

	r.Record(input.GroupNormal)
	r.Record(input.GroupNormal)
	if err := r.Flush(); err != nil {
		t.Fatalf("first Flush: %v", err)
	}
	r.Record(input.GroupNormal)
	if err := r.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}

	stats, err := db.GetGroupStats(7)
	if err != nil {
		t.Fatalf("GetGroupStats: %v", err)
	}
	if len(stats) != 1 || stats[0].Presses != 3 {
		t.Fatalf("group stats = %+v, want one row with 3 presses", stats)
	}
}

func TestFlushEmptyIsNoop(t *testing.T) {
	db := openTestDB(t)
	r := NewRecorder(db)
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush on empty recorder: %v", err)
	}
}

func TestDailyStatsWindow(t *testing.T) {
	db := openTestDB(t)
	r := NewRecorder(db)

	r.Record(input.GroupNavigation)
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	daily, err := db.GetDailyStats(1)
	if err != nil {
		t.Fatalf("GetDailyStats: %v", err)
	}
	if len(daily) != 1 {
		t.Fatalf("daily rows = %d, want 1", len(daily))
	}
	if daily[0].Presses != 1 {
		t.Fatalf("daily presses = %d, want 1", daily[0].Presses)
	}
	if daily[0].Date != time.Now().UTC().Format("2006-01-02") {
		t.Fatalf("daily date = %q", daily[0].Date)
	}
}
