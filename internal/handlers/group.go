package handlers

import (
	"encoding/json"
	"net/http"

	"travel-recommendation-backend/internal/middleware"
	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// GroupHandler handles travel group HTTP requests
type GroupHandler struct {
	groupService *services.GroupService
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService *services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=128"`
}

// CreateGroupResponse confirms a group creation
type CreateGroupResponse struct {
	Message string `json:"message"`
	GroupID int64  `json:"groupId"`
}

// Create handles POST /api/groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	group, err := h.groupService.Create(r.Context(), req.Name, userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to create group")
		respondServiceError(w, err)
		return
	}

	log.Info().Int64("group_id", group.ID).Int64("created_by", userID).Msg("Group created")

	respondJSON(w, http.StatusOK, CreateGroupResponse{
		Message: "Group created successfully",
		GroupID: group.ID,
	})
}

// ListByUser handles GET /api/groups/{userId}
func (h *GroupHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		respondError(w, "Invalid user id", http.StatusBadRequest)
		return
	}
	if !requireOwner(w, r, userID) {
		return
	}

	groups, err := h.groupService.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("Failed to list groups")
		respondServiceError(w, err)
		return
	}

	if groups == nil {
		groups = []*models.GroupWithRole{}
	}
	respondJSON(w, http.StatusOK, groups)
}

// AddMemberRequest represents the request body for adding a group member
type AddMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// AddMember handles POST /api/groups/{groupId}/members
func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r, "groupId")
	if err != nil {
		respondError(w, "Invalid group id", http.StatusBadRequest)
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.groupService.AddMember(r.Context(), groupID, req.UserID); err != nil {
		log.Error().Err(err).Int64("group_id", groupID).Int64("user_id", req.UserID).Msg("Failed to add group member")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Member added successfully"})
}
