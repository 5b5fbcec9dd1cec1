package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"travel-recommendation-backend/internal/geo"
	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/repository"
)

// DefaultNearbyRadiusKm is the radius used when a nearby lookup does not
// supply one.
const DefaultNearbyRadiusKm = 50.0

const stockPhotoHost = "unsplash.com"

// DestinationService handles destination search, geo lookups and
// restaurant listings
type DestinationService struct {
	destRepo       *repository.DestinationRepository
	restaurantRepo *repository.RestaurantRepository
}

// NewDestinationService creates a new destination service
func NewDestinationService(destRepo *repository.DestinationRepository, restaurantRepo *repository.RestaurantRepository) *DestinationService {
	return &DestinationService{
		destRepo:       destRepo,
		restaurantRepo: restaurantRepo,
	}
}

// Search returns destinations matching the supplied facet filters, with
// review aggregates and resolved image URLs. No filters means all
// destinations; an empty result is not an error.
func (s *DestinationService) Search(ctx context.Context, filter repository.DestinationFilter) ([]*models.DestinationSummary, error) {
	results, err := s.destRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, d := range results {
		// A destination with no reviews falls back to its static rating.
		if d.ReviewCount == 0 {
			d.AverageRating = d.Rating
		}
		d.ImageURL = resolveImageURL(d.ImageURL, d.Name)
	}

	return results, nil
}

// Facets returns the distinct preference facet combinations.
func (s *DestinationService) Facets(ctx context.Context) ([]*models.FacetValues, error) {
	return s.destRepo.ListFacets(ctx)
}

// Nearby returns the destinations within radiusKm of the anchor
// destination, ascending by great-circle distance. The anchor's
// coordinates are resolved first and passed explicitly into every distance
// computation.
func (s *DestinationService) Nearby(ctx context.Context, anchorID int64, radiusKm float64) ([]*models.NearbyDestination, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultNearbyRadiusKm
	}

	anchor, err := s.destRepo.GetByID(ctx, anchorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anchor destination: %w", err)
	}

	others, err := s.destRepo.ListExcept(ctx, anchorID)
	if err != nil {
		return nil, err
	}

	var nearby []*models.NearbyDestination
	for _, d := range others {
		dist := geo.Haversine(anchor.Latitude, anchor.Longitude, d.Latitude, d.Longitude)
		if dist < radiusKm {
			nearby = append(nearby, &models.NearbyDestination{Destination: *d, DistanceKm: dist})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})

	return nearby, nil
}

// Restaurants returns the restaurants of a destination with their popular
// foods.
func (s *DestinationService) Restaurants(ctx context.Context, destinationID int64) ([]*models.RestaurantWithFoods, error) {
	return s.restaurantRepo.ListByDestination(ctx, destinationID)
}

// resolveImageURL rewrites stock-photo placeholder URLs to the canonical
// local asset path for the destination; any other URL passes through.
func resolveImageURL(imageURL, name string) string {
	if !strings.Contains(imageURL, stockPhotoHost) {
		return imageURL
	}
	return "images/destinations/" + slugify(name) + ".jpg"
}

// slugify lowercases a destination name and collapses whitespace runs into
// single hyphens.
func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
