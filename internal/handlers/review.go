package handlers

import (
	"encoding/json"
	"net/http"

	"travel-recommendation-backend/internal/middleware"
	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// AddReviewRequest represents the request body for adding a review
type AddReviewRequest struct {
	DestinationID int64  `json:"destination_id" validate:"required"`
	Rating        int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment       string `json:"comment"`
}

// Add handles POST /api/reviews
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	review, err := h.reviewService.Add(r.Context(), userID, req.DestinationID, req.Rating, req.Comment)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Int64("destination_id", req.DestinationID).Msg("Failed to add review")
		respondServiceError(w, err)
		return
	}

	log.Info().Int64("review_id", review.ID).Int64("destination_id", review.DestinationID).Msg("Review added")

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Review added successfully"})
}

// ListByDestination handles GET /api/reviews/{destinationId}
func (h *ReviewHandler) ListByDestination(w http.ResponseWriter, r *http.Request) {
	destinationID, err := pathID(r, "destinationId")
	if err != nil {
		respondError(w, "Invalid destination id", http.StatusBadRequest)
		return
	}

	reviews, err := h.reviewService.ListByDestination(r.Context(), destinationID)
	if err != nil {
		log.Error().Err(err).Int64("destination_id", destinationID).Msg("Failed to list reviews")
		respondServiceError(w, err)
		return
	}

	if reviews == nil {
		reviews = []*models.Review{}
	}
	respondJSON(w, http.StatusOK, reviews)
}
