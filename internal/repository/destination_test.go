package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travel-recommendation-backend/internal/repository/repositorytest"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryRow() []any {
	return []any{
		int64(1), "Bali Beaches", "Sun and surf", 4.5, -8.4, 115.1, "images/destinations/bali-beaches.jpg",
		[]string{"beach"}, []string{"medium"}, []string{"summer"}, []string{"relaxed"},
		4.0, 2,
	}
}

func TestSearchWithoutFiltersBindsNothing(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(summaryRow()), nil
		},
	}
	repo := NewDestinationRepository(db)

	results, err := repo.Search(context.Background(), DestinationFilter{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	q := db.Queries[0]
	assert.Empty(t, q.Args)
	assert.NotContains(t, q.SQL, "$1")
	assert.Contains(t, q.SQL, "LEFT JOIN preferences")
	assert.Contains(t, q.SQL, "ORDER BY d.rating DESC")
}

func TestSearchFiltersAreConjunctiveAndBound(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(), nil
		},
	}
	repo := NewDestinationRepository(db)

	_, err := repo.Search(context.Background(), DestinationFilter{
		PreferenceType: "beach",
		BudgetRange:    "medium",
		Season:         "summer",
	})
	require.NoError(t, err)

	q := db.Queries[0]
	assert.Contains(t, q.SQL, "WHERE p.preference_type = $1 AND p.budget_range = $2 AND p.season = $3")
	assert.Equal(t, []any{"beach", "medium", "summer"}, q.Args)
	// Filter values never appear in the SQL text itself.
	assert.NotContains(t, q.SQL, "beach")
}

func TestSearchSingleFilter(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(), nil
		},
	}
	repo := NewDestinationRepository(db)

	_, err := repo.Search(context.Background(), DestinationFilter{Season: "winter"})
	require.NoError(t, err)

	q := db.Queries[0]
	assert.Contains(t, q.SQL, "WHERE p.season = $1")
	assert.NotContains(t, q.SQL, "preference_type = $")
	assert.Equal(t, []any{"winter"}, q.Args)
}

func TestSearchScansAggregates(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(summaryRow()), nil
		},
	}
	repo := NewDestinationRepository(db)

	results, err := repo.Search(context.Background(), DestinationFilter{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	d := results[0]
	assert.Equal(t, int64(1), d.ID)
	assert.Equal(t, []string{"beach"}, d.PreferenceTypes)
	assert.Equal(t, []string{"relaxed"}, d.TravelStyles)
	assert.Equal(t, 4.0, d.AverageRating)
	assert.Equal(t, 2, d.ReviewCount)
}

func TestGetByIDNotFound(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryRowFn: func(sql string, args []any) pgx.Row {
			return repositorytest.RowErr(pgx.ErrNoRows)
		},
	}
	repo := NewDestinationRepository(db)

	_, err := repo.GetByID(context.Background(), 99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestListExceptExcludesAnchor(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(), nil
		},
	}
	repo := NewDestinationRepository(db)

	_, err := repo.ListExcept(context.Background(), 7)
	require.NoError(t, err)

	q := db.Queries[0]
	assert.True(t, strings.Contains(q.SQL, "id != $1"))
	assert.Equal(t, []any{int64(7)}, q.Args)
}
