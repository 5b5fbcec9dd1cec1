package services

import (
	"context"

	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/repository"
)

// WishlistService handles wishlist operations
type WishlistService struct {
	wishlistRepo *repository.WishlistRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(wishlistRepo *repository.WishlistRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

// Add puts a destination on a user's wishlist. Adding the same destination
// twice yields ErrConflict.
func (s *WishlistService) Add(ctx context.Context, userID, destinationID int64) error {
	return s.wishlistRepo.Add(ctx, userID, destinationID)
}

// List returns the destinations on a user's wishlist.
func (s *WishlistService) List(ctx context.Context, userID int64) ([]*models.Destination, error) {
	return s.wishlistRepo.ListDestinations(ctx, userID)
}
