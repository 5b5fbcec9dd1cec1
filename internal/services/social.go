package services

import (
	"context"
	"errors"
	"fmt"

	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/repository"
)

// SocialService handles the friend graph
type SocialService struct {
	socialRepo *repository.SocialRepository
	userRepo   *repository.UserRepository
}

// NewSocialService creates a new social service
func NewSocialService(socialRepo *repository.SocialRepository, userRepo *repository.UserRepository) *SocialService {
	return &SocialService{
		socialRepo: socialRepo,
		userRepo:   userRepo,
	}
}

// Friends returns the users connected to userID through an accepted
// connection in either direction.
func (s *SocialService) Friends(ctx context.Context, userID int64) ([]*models.UserProfile, error) {
	return s.socialRepo.ListFriends(ctx, userID)
}

// AddFriend resolves friendEmail to a user and records a pending
// connection. An unknown email yields ErrNotFound; an existing connection
// in either direction yields ErrConflict. Sending yourself a request is a
// conflict as well.
func (s *SocialService) AddFriend(ctx context.Context, userID int64, friendEmail string) error {
	friend, err := s.userRepo.GetByEmail(ctx, friendEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("friend email: %w", ErrNotFound)
		}
		return err
	}

	if friend.ID == userID {
		return fmt.Errorf("cannot befriend yourself: %w", ErrConflict)
	}

	exists, err := s.socialRepo.ConnectionExists(ctx, userID, friend.ID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("connection already exists: %w", ErrConflict)
	}

	return s.socialRepo.CreateConnection(ctx, userID, friend.ID)
}
