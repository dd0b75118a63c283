package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Get("/words", s.handleListWords)
		r.Post("/words", s.handleCreateWord)
		r.Delete("/words/{term}", s.handleDeleteWord)
		r.Get("/words/{term}/history", s.handleWordHistory)
		r.Post("/words/{term}/answer", s.handleAnswer)

		r.Post("/practice/queue", s.handlePracticeQueue)

		r.Get("/stats", s.handleStats)
		r.Get("/stats/snapshot", s.handleStatsSnapshot)

		r.Post("/progress/reset", s.handleResetProgress)
	})

	return r
}
