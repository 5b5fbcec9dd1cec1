package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travel-recommendation-backend/internal/repository"
	"travel-recommendation-backend/internal/repository/repositorytest"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destService(db *repositorytest.FakeDB) *DestinationService {
	return NewDestinationService(
		repository.NewDestinationRepository(db),
		repository.NewRestaurantRepository(db),
	)
}

func TestSearchFallsBackToStaticRatingWithoutReviews(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(
				[]any{
					int64(1), "Bali Beaches", "Sun", 4.5, -8.4, 115.1, "images/destinations/bali-beaches.jpg",
					[]string{"beach"}, []string{"medium"}, []string{"summer"}, []string{"relaxed"},
					0.0, 0,
				},
				[]any{
					int64(2), "Kyoto", "Temples", 4.2, 35.0, 135.8, "images/destinations/kyoto.jpg",
					[]string{"culture"}, []string{"high"}, []string{"spring"}, []string{"slow"},
					3.5, 4,
				},
			), nil
		},
	}
	svc := destService(db)

	results, err := svc.Search(context.Background(), repository.DestinationFilter{})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 4.5, results[0].AverageRating)
	assert.Equal(t, 0, results[0].ReviewCount)

	assert.Equal(t, 3.5, results[1].AverageRating)
	assert.Equal(t, 4, results[1].ReviewCount)
}

func TestSearchRewritesStockPhotoURLs(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(
				[]any{
					int64(1), "Swiss Alps", "Peaks", 4.9, 46.6, 8.0, "https://images.unsplash.com/photo-123",
					[]string{"mountain"}, []string{"high"}, []string{"winter"}, []string{"active"},
					4.7, 12,
				},
				[]any{
					int64(2), "Kyoto", "Temples", 4.2, 35.0, 135.8, "images/destinations/kyoto.jpg",
					[]string{"culture"}, []string{"high"}, []string{"spring"}, []string{"slow"},
					3.5, 4,
				},
			), nil
		},
	}
	svc := destService(db)

	results, err := svc.Search(context.Background(), repository.DestinationFilter{})
	require.NoError(t, err)

	assert.Equal(t, "images/destinations/swiss-alps.jpg", results[0].ImageURL)
	assert.Equal(t, "images/destinations/kyoto.jpg", results[1].ImageURL)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "bali-beaches", slugify("Bali Beaches"))
	assert.Equal(t, "new-york-city", slugify("New  York\tCity"))
	assert.Equal(t, "kyoto", slugify("Kyoto"))
}

func nearbyFixtureDB() *repositorytest.FakeDB {
	db := &repositorytest.FakeDB{}
	db.QueryRowFn = func(sql string, args []any) pgx.Row {
		// Anchor destination at the origin.
		return repositorytest.Row(int64(1), "Origin", "", 4.0, 0.0, 0.0, "")
	}
	db.QueryFn = func(sql string, args []any) (pgx.Rows, error) {
		return repositorytest.Rows(
			[]any{int64(2), "One Degree East", "", 4.0, 0.0, 1.0, ""},
			[]any{int64(3), "Nearby North", "", 4.0, 0.2, 0.0, ""},
		), nil
	}
	return db
}

func TestNearbyDefaultRadiusExcludesDistantPoints(t *testing.T) {
	svc := destService(nearbyFixtureDB())

	// Radius 0 falls back to the 50 km default; the point one degree away
	// (~111 km) is out of range.
	nearby, err := svc.Nearby(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, nearby, 1)
	assert.Equal(t, int64(3), nearby[0].ID)
	assert.InDelta(t, 22.2, nearby[0].DistanceKm, 0.5)
}

func TestNearbyWiderRadiusOrdersByDistance(t *testing.T) {
	svc := destService(nearbyFixtureDB())

	nearby, err := svc.Nearby(context.Background(), 1, 200)
	require.NoError(t, err)
	require.Len(t, nearby, 2)

	assert.Equal(t, int64(3), nearby[0].ID)
	assert.Equal(t, int64(2), nearby[1].ID)
	assert.InDelta(t, 111.19, nearby[1].DistanceKm, 0.5)
	assert.Less(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
}

func TestNearbyUnknownAnchorIsNotFound(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryRowFn: func(sql string, args []any) pgx.Row {
			return repositorytest.RowErr(pgx.ErrNoRows)
		},
	}
	svc := destService(db)

	_, err := svc.Nearby(context.Background(), 99, 50)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNearbyResolvesAnchorBeforeListing(t *testing.T) {
	db := nearbyFixtureDB()
	svc := destService(db)

	_, err := svc.Nearby(context.Background(), 1, 200)
	require.NoError(t, err)

	// The anchor lookup runs first and its coordinates feed the distance
	// computation; the listing then excludes the anchor itself.
	require.Len(t, db.Queries, 2)
	assert.Contains(t, db.Queries[0].SQL, "WHERE id = $1")
	assert.Contains(t, db.Queries[1].SQL, "id != $1")
	assert.Equal(t, []any{int64(1)}, db.Queries[1].Args)
}

func TestResolveImageURLPassesThroughNonStockURLs(t *testing.T) {
	url := "https://example.com/own-photo.jpg"
	assert.Equal(t, url, resolveImageURL(url, "Anywhere"))
	assert.True(t, strings.HasPrefix(resolveImageURL("https://unsplash.com/x", "Anywhere"), "images/destinations/"))
}
