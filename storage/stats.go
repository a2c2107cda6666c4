package storage

import (
	"fmt"
	"sync"
	"time"

	"keyglow/input"
)

// DailyStats represents press totals for a single day
type DailyStats struct {
	Date    string `json:"date"`
	Presses int64  `json:"presses"`
}

// GroupStats represents press totals for one style group
type GroupStats struct {
	Group   string `json:"group"`
	Presses int64  `json:"presses"`
}

type bucket struct {
	date  string
	group input.Group
}

// Recorder buffers press counts in memory and flushes them to the database
// in batches, keeping SQLite writes off the event path entirely.
type Recorder struct {
	db *DB

	mu      sync.Mutex
	pending map[bucket]int64
	now     func() time.Time
}

// NewRecorder creates a recorder backed by db.
func NewRecorder(db *DB) *Recorder {
	return &Recorder{
		db:      db,
		pending: make(map[bucket]int64),
		now:     time.Now,
	}
}

// Record counts one press for a style group. It never touches the database.
func (r *Recorder) Record(g input.Group) {
	key := bucket{date: r.now().UTC().Format("2006-01-02"), group: g}
	r.mu.Lock()
	r.pending[key]++
	r.mu.Unlock()
}

// Pending reports how many presses are buffered and not yet flushed.
func (r *Recorder) Pending() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.pending {
		n += c
	}
	return n
}

// Flush writes the buffered counts to the database. Counts are taken out of
// the buffer first and restored on failure, so nothing is lost or doubled.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	if len(r.pending) == 0 {
		r.mu.Unlock()
		return nil
	}
	batch := r.pending
	r.pending = make(map[bucket]int64)
	r.mu.Unlock()

	if err := r.db.addPresses(batch); err != nil {
		r.mu.Lock()
		for key, n := range batch {
			r.pending[key] += n
		}
		r.mu.Unlock()
		return fmt.Errorf("failed to flush press counts: %w", err)
	}
	return nil
}

func (db *DB) addPresses(batch map[bucket]int64) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO press_counts (date, style_group, presses)
		VALUES (?, ?, ?)
		ON CONFLICT (date, style_group)
		DO UPDATE SET presses = presses + excluded.presses
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, n := range batch {
		if _, err := stmt.Exec(key.date, string(key.group), n); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// GetDailyStats retrieves press totals grouped by date for the last N days
func (db *DB) GetDailyStats(days int) ([]DailyStats, error) {
	query := `
		SELECT date, SUM(presses) as presses
		FROM press_counts
		WHERE date >= date('now', '-' || ? || ' days')
		GROUP BY date
		ORDER BY date DESC
	`

	rows, err := db.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats: %w", err)
	}
	defer rows.Close()

	var stats []DailyStats
	for rows.Next() {
		var s DailyStats
		if err := rows.Scan(&s.Date, &s.Presses); err != nil {
			return nil, fmt.Errorf("failed to scan daily stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}

// GetGroupStats retrieves press totals grouped by style group for the last
// N days
func (db *DB) GetGroupStats(days int) ([]GroupStats, error) {
	query := `
		SELECT style_group, SUM(presses) as presses
		FROM press_counts
		WHERE date >= date('now', '-' || ? || ' days')
		GROUP BY style_group
		ORDER BY presses DESC
	`

	rows, err := db.conn.Query(query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to query group stats: %w", err)
	}
	defer rows.Close()

	var stats []GroupStats
	for rows.Next() {
		var s GroupStats
		if err := rows.Scan(&s.Group, &s.Presses); err != nil {
			return nil, fmt.Errorf("failed to scan group stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
