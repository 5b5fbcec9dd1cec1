package repository

import (
	"context"
	"fmt"

	"travel-recommendation-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// DestinationFilter holds optional search facets. Filters combine
// conjunctively; a zero value matches all destinations.
type DestinationFilter struct {
	PreferenceType string
	BudgetRange    string
	Season         string
}

// DestinationRepository handles database operations for destinations
type DestinationRepository struct {
	db DB
}

// NewDestinationRepository creates a new destination repository
func NewDestinationRepository(db DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

// Search returns destinations matching every supplied facet filter, each
// annotated with its distinct preference facet values and review
// statistics. Facet filters are WHERE conditions on the joined preference
// rows, so once any filter is supplied a destination without a matching
// preference row drops out despite the LEFT JOIN.
func (r *DestinationRepository) Search(ctx context.Context, filter DestinationFilter) ([]*models.DestinationSummary, error) {
	var c Clauses
	if filter.PreferenceType != "" {
		c.Add("p.preference_type = ?", filter.PreferenceType)
	}
	if filter.BudgetRange != "" {
		c.Add("p.budget_range = ?", filter.BudgetRange)
	}
	if filter.Season != "" {
		c.Add("p.season = ?", filter.Season)
	}

	query := fmt.Sprintf(`
		SELECT d.id, d.name, d.description, d.rating, d.latitude, d.longitude, d.image_url,
			COALESCE(ARRAY_AGG(DISTINCT p.preference_type) FILTER (WHERE p.preference_type IS NOT NULL), '{}'),
			COALESCE(ARRAY_AGG(DISTINCT p.budget_range) FILTER (WHERE p.budget_range IS NOT NULL), '{}'),
			COALESCE(ARRAY_AGG(DISTINCT p.season) FILTER (WHERE p.season IS NOT NULL), '{}'),
			COALESCE(ARRAY_AGG(DISTINCT p.travel_style) FILTER (WHERE p.travel_style IS NOT NULL), '{}'),
			COALESCE((SELECT AVG(r.rating) FROM reviews r WHERE r.destination_id = d.id), 0),
			(SELECT COUNT(*) FROM reviews r WHERE r.destination_id = d.id)
		FROM destinations d
		LEFT JOIN preferences p ON p.destination_id = d.id
		%s
		GROUP BY d.id
		ORDER BY d.rating DESC
	`, c.Where())

	rows, err := r.db.Query(ctx, query, c.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to search destinations: %w", err)
	}
	defer rows.Close()

	var results []*models.DestinationSummary
	for rows.Next() {
		var d models.DestinationSummary
		err := rows.Scan(
			&d.ID, &d.Name, &d.Description, &d.Rating, &d.Latitude, &d.Longitude, &d.ImageURL,
			&d.PreferenceTypes, &d.BudgetRanges, &d.Seasons, &d.TravelStyles,
			&d.AverageRating, &d.ReviewCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		results = append(results, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating destinations: %w", err)
	}

	return results, nil
}

// GetByID retrieves a destination by ID
func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*models.Destination, error) {
	query := `
		SELECT id, name, description, rating, latitude, longitude, image_url
		FROM destinations
		WHERE id = $1
	`
	var d models.Destination
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Description, &d.Rating, &d.Latitude, &d.Longitude, &d.ImageURL,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("destination %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}
	return &d, nil
}

// ListExcept returns every destination other than the given one.
func (r *DestinationRepository) ListExcept(ctx context.Context, id int64) ([]*models.Destination, error) {
	query := `
		SELECT id, name, description, rating, latitude, longitude, image_url
		FROM destinations
		WHERE id != $1
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer rows.Close()

	var destinations []*models.Destination
	for rows.Next() {
		var d models.Destination
		err := rows.Scan(
			&d.ID, &d.Name, &d.Description, &d.Rating, &d.Latitude, &d.Longitude, &d.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating destinations: %w", err)
	}

	return destinations, nil
}

// ListFacets returns the distinct preference facet combinations available
// for filtering.
func (r *DestinationRepository) ListFacets(ctx context.Context) ([]*models.FacetValues, error) {
	query := `SELECT DISTINCT preference_type, budget_range, season FROM preferences`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list facets: %w", err)
	}
	defer rows.Close()

	var facets []*models.FacetValues
	for rows.Next() {
		var f models.FacetValues
		if err := rows.Scan(&f.PreferenceType, &f.BudgetRange, &f.Season); err != nil {
			return nil, fmt.Errorf("failed to scan facet: %w", err)
		}
		facets = append(facets, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating facets: %w", err)
	}

	return facets, nil
}
