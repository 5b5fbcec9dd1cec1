package handlers

import (
	"encoding/json"
	"net/http"

	"travel-recommendation-backend/internal/middleware"
	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// SocialHandler handles friend graph HTTP requests
type SocialHandler struct {
	socialService *services.SocialService
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(socialService *services.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

// Friends handles GET /api/friends/{userId}
func (h *SocialHandler) Friends(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if !requireOwner(w, r, userID) {
		return
	}

	friends, err := h.socialService.Friends(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to list friends")
		respondServiceError(w, err)
		return
	}

	if friends == nil {
		friends = []*models.UserProfile{}
	}
	respondJSON(w, http.StatusOK, friends)
}

// AddFriendRequest represents the request body for a friend request
type AddFriendRequest struct {
	FriendEmail string `json:"friend_email" validate:"required,email"`
}

// AddFriend handles POST /api/friends
func (h *SocialHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.socialService.AddFriend(r.Context(), userID, req.FriendEmail); err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to add friend")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Friend request sent successfully"})
}
