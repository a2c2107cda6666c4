package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"keyglow/storage"
)

// handleStatus returns whether global capture is currently working
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	frame := s.bridge.Snapshot()
	status := struct {
		Capturing     bool   `json:"capturing"`
		ActiveEntries int    `json:"activeEntries"`
		ConfigVersion uint64 `json:"configVersion"`
	}{
		Capturing:     frame.CaptureActive,
		ActiveEntries: len(frame.Entries),
		ConfigVersion: frame.Config.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// handleConfig returns the current resolved configuration snapshot
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.Current())
}

// handleStats returns aggregate press counts for the last N days
// (?days=N, default 7)
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "Invalid days parameter", http.StatusBadRequest)
			return
		}
		days = n
	}

	daily, err := s.db.GetDailyStats(days)
	if err != nil {
		slog.Error("Failed to query daily stats", "error", err)
		http.Error(w, "Failed to retrieve statistics", http.StatusInternalServerError)
		return
	}
	groups, err := s.db.GetGroupStats(days)
	if err != nil {
		slog.Error("Failed to query group stats", "error", err)
		http.Error(w, "Failed to retrieve statistics", http.StatusInternalServerError)
		return
	}

	stats := struct {
		Days   int                  `json:"days"`
		Daily  []storage.DailyStats `json:"daily"`
		Groups []storage.GroupStats `json:"groups"`
	}{
		Days:   days,
		Daily:  daily,
		Groups: groups,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
