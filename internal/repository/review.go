package repository

import (
	"context"
	"fmt"

	"travel-recommendation-backend/internal/models"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review and fills in the generated ID. Users may
// review the same destination more than once.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (destination_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		review.DestinationID, review.UserID, review.Rating, review.Comment, review.CreatedAt,
	).Scan(&review.ID)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListByDestination returns the reviews for a destination joined with the
// reviewer's username, newest first.
func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID int64) ([]*models.Review, error) {
	query := `
		SELECT r.id, r.destination_id, r.user_id, r.rating, r.comment, r.created_at, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.destination_id = $1
		ORDER BY r.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID, &review.DestinationID, &review.UserID,
			&review.Rating, &review.Comment, &review.CreatedAt, &review.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}
