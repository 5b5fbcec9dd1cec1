package services

import (
	"context"

	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/repository"
)

// GroupService handles travel group operations
type GroupService struct {
	groupRepo *repository.GroupRepository
}

// NewGroupService creates a new group service
func NewGroupService(groupRepo *repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// Create makes a travel group with the creator as its admin member. The
// two inserts are one transaction.
func (s *GroupService) Create(ctx context.Context, name string, createdBy int64) (*models.TravelGroup, error) {
	group := &models.TravelGroup{
		Name:      name,
		CreatedBy: createdBy,
	}
	if err := s.groupRepo.CreateWithAdmin(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// ListByUser returns the groups a user belongs to with their role in each.
func (s *GroupService) ListByUser(ctx context.Context, userID int64) ([]*models.GroupWithRole, error) {
	return s.groupRepo.ListByUser(ctx, userID)
}

// AddMember adds a user to a group with the default member role.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID int64) error {
	return s.groupRepo.AddMember(ctx, groupID, userID)
}
