package repository

import (
	"context"
	"fmt"

	"travel-recommendation-backend/internal/models"
)

// WishlistRepository handles database operations for wishlists
type WishlistRepository struct {
	db DB
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Add inserts a wishlist entry. The (user, destination) pair is unique; a
// second insert of the same pair surfaces as ErrDuplicate.
func (r *WishlistRepository) Add(ctx context.Context, userID, destinationID int64) error {
	query := `INSERT INTO wishlist (user_id, destination_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, userID, destinationID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("wishlist entry: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}
	return nil
}

// ListDestinations returns the destinations on a user's wishlist.
func (r *WishlistRepository) ListDestinations(ctx context.Context, userID int64) ([]*models.Destination, error) {
	query := `
		SELECT d.id, d.name, d.description, d.rating, d.latitude, d.longitude, d.image_url
		FROM destinations d
		JOIN wishlist w ON w.destination_id = d.id
		WHERE w.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer rows.Close()

	var destinations []*models.Destination
	for rows.Next() {
		var d models.Destination
		err := rows.Scan(
			&d.ID, &d.Name, &d.Description, &d.Rating, &d.Latitude, &d.Longitude, &d.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wishlist destination: %w", err)
		}
		destinations = append(destinations, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishlist: %w", err)
	}

	return destinations, nil
}
