package services

import (
	"context"
	"time"

	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/repository"
)

// ReviewService handles review submission and listing
type ReviewService struct {
	reviewRepo *repository.ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// Add records a review of a destination by a user.
func (s *ReviewService) Add(ctx context.Context, userID, destinationID int64, rating int, comment string) (*models.Review, error) {
	review := &models.Review{
		DestinationID: destinationID,
		UserID:        userID,
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByDestination returns a destination's reviews, newest first.
func (s *ReviewService) ListByDestination(ctx context.Context, destinationID int64) ([]*models.Review, error) {
	return s.reviewRepo.ListByDestination(ctx, destinationID)
}
