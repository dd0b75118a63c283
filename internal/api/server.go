package api

import (
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/services"
)

type Server struct {
	DB               *sqlx.DB
	PracticeService  services.PracticeService
	WordService      services.WordService
	StatsService     services.StatsService
	DefaultQueueSize int
	MaxQueueSize     int
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
