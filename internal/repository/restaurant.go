package repository

import (
	"context"
	"fmt"

	"travel-recommendation-backend/internal/models"
)

// RestaurantRepository handles database operations for restaurants
type RestaurantRepository struct {
	db DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// ListByDestination returns the restaurants of a destination, each with a
// comma-joined list of its popular food names.
func (r *RestaurantRepository) ListByDestination(ctx context.Context, destinationID int64) ([]*models.RestaurantWithFoods, error) {
	query := `
		SELECT r.id, r.destination_id, r.name, r.cuisine_type, r.price_range,
			r.rating, r.latitude, r.longitude,
			COALESCE(STRING_AGG(f.name, ','), '')
		FROM restaurants r
		LEFT JOIN foods f ON f.restaurant_id = r.id
		WHERE r.destination_id = $1
		GROUP BY r.id
	`
	rows, err := r.db.Query(ctx, query, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []*models.RestaurantWithFoods
	for rows.Next() {
		var rest models.RestaurantWithFoods
		err := rows.Scan(
			&rest.ID, &rest.DestinationID, &rest.Name, &rest.CuisineType, &rest.PriceRange,
			&rest.Rating, &rest.Latitude, &rest.Longitude, &rest.PopularFoods,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, &rest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurants: %w", err)
	}

	return restaurants, nil
}
