package handlers

import (
	"net/http"
	"time"

	"travel-recommendation-backend/internal/repository"

	"github.com/rs/zerolog/log"
)

// HealthHandler handles liveness endpoints
type HealthHandler struct {
	db repository.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db repository.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse reports process liveness
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// TestDB handles GET /api/test with a storage round trip
func (h *HealthHandler) TestDB(w http.ResponseWriter, r *http.Request) {
	var one int
	if err := h.db.QueryRow(r.Context(), `SELECT 1`).Scan(&one); err != nil {
		log.Error().Err(err).Msg("Database connection test failed")
		respondError(w, "Database connection failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, MessageResponse{Message: "Database connection successful"})
}
