package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saras/kosakata/internal/errors"
	"github.com/saras/kosakata/internal/models"
)

type createWordRequest struct {
	Term         string   `json:"term"`
	Translations []string `json:"translations"`
	Notes        string   `json:"notes"`
}

// handleListWords lists catalog words, optionally filtered by a search term.
func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	filter := models.WordFilter{
		Search: r.URL.Query().Get("search"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	words, total, err := s.WordService.ListWords(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"words": words,
		"total": total,
	})
}

// handleCreateWord adds a word to the catalog.
func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewValidationError("body", "invalid JSON"))
		return
	}

	word, err := s.WordService.CreateWord(r.Context(), models.Word{
		Term:         req.Term,
		Translations: req.Translations,
		Notes:        req.Notes,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, word)
}

// handleDeleteWord removes a word and, via cascade, its progress and history.
func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if term == "" {
		handleError(w, r, errors.NewValidationError("term", "cannot be empty"))
		return
	}

	if err := s.WordService.DeleteWord(r.Context(), term); err != nil {
		handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleWordHistory returns the most recent answers recorded for a word.
func (s *Server) handleWordHistory(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if term == "" {
		handleError(w, r, errors.NewValidationError("term", "cannot be empty"))
		return
	}

	limit := queryInt(r, "limit", 20)
	if limit < 1 || limit > 200 {
		limit = 20
	}

	recs, err := s.WordService.WordHistory(r.Context(), term, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"term":    term,
		"answers": recs,
	})
}

// handleResetProgress wipes all practice progress while keeping the catalog.
func (s *Server) handleResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := s.WordService.ResetAllProgress(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"status": "reset"})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
