package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saras/kosakata/internal/errors"
	"github.com/saras/kosakata/internal/srs"
)

type practiceQueueRequest struct {
	Count   int      `json:"count"`
	Exclude []string `json:"exclude"`
}

type answerRequest struct {
	Correct     bool   `json:"correct"`
	GivenAnswer string `json:"given_answer"`
	ResponseMs  int64  `json:"response_ms"`
}

// handlePracticeQueue builds a practice queue of the most urgent words.
func (s *Server) handlePracticeQueue(w http.ResponseWriter, r *http.Request) {
	req := practiceQueueRequest{Count: s.DefaultQueueSize}
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			handleError(w, r, errors.NewValidationError("body", "invalid JSON"))
			return
		}
	}
	if req.Count < 1 {
		req.Count = s.DefaultQueueSize
	}
	if req.Count > s.MaxQueueSize {
		req.Count = s.MaxQueueSize
	}

	words, err := s.PracticeService.NextWords(r.Context(), req.Count, req.Exclude)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"words": words,
		"count": len(words),
	})
}

// handleAnswer records the outcome of one practice exposure.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "term")
	if term == "" {
		handleError(w, r, errors.NewValidationError("term", "cannot be empty"))
		return
	}

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, errors.NewValidationError("body", "invalid JSON"))
		return
	}
	if req.ResponseMs < 0 {
		handleError(w, r, errors.NewValidationError("response_ms", "cannot be negative"))
		return
	}

	ans := srs.Answer{
		Correct:      req.Correct,
		GivenAnswer:  req.GivenAnswer,
		ResponseTime: time.Duration(req.ResponseMs) * time.Millisecond,
	}

	result, err := s.PracticeService.RecordAnswer(r.Context(), term, ans)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"progress":      result.Progress,
		"just_mastered": result.JustMastered,
		"badge":         badgeFor(&result.Progress),
	})
}
