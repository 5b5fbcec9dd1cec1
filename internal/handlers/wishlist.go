package handlers

import (
	"encoding/json"
	"net/http"

	"travel-recommendation-backend/internal/middleware"
	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// WishlistHandler handles wishlist HTTP requests
type WishlistHandler struct {
	wishlistService *services.WishlistService
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// AddWishlistRequest represents the request body for a wishlist addition
type AddWishlistRequest struct {
	DestinationID int64 `json:"destination_id" validate:"required"`
}

// Add handles POST /api/wishlist
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req AddWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.wishlistService.Add(r.Context(), userID, req.DestinationID); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Int64("destination_id", req.DestinationID).Msg("Failed to add to wishlist")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Destination added to wishlist"})
}

// List handles GET /api/wishlist/{userId}
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if !requireOwner(w, r, userID) {
		return
	}

	destinations, err := h.wishlistService.List(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to list wishlist")
		respondServiceError(w, err)
		return
	}

	if destinations == nil {
		destinations = []*models.Destination{}
	}
	respondJSON(w, http.StatusOK, destinations)
}
