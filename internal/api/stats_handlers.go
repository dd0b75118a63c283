package api

import (
	"net/http"
)

// handleStats returns the current due-statistics overview.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.StatsService.Overview(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

// handleStatsSnapshot returns the most recent stored snapshot, or 204 when
// none has been taken yet.
func (s *Server) handleStatsSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.StatsService.LatestSnapshot(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	if snap == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r, http.StatusOK, snap)
}
