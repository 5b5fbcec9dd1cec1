package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel-recommendation-backend/internal/middleware"
	"travel-recommendation-backend/internal/repository"
	"travel-recommendation-backend/internal/repository/repositorytest"
	"travel-recommendation-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("friend email: %w", services.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("wishlist entry: %w", services.ErrConflict), http.StatusBadRequest},
		{fmt.Errorf("password mismatch: %w", services.ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("not yours: %w", services.ErrForbidden), http.StatusForbidden},
		{errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		respondServiceError(rec, tc.err)
		assert.Equal(t, tc.code, rec.Code, "error %v", tc.err)
		// The cause is attached to the response, never swallowed.
		assert.Contains(t, rec.Body.String(), tc.err.Error())
	}
}

// wishlistRouter wires the wishlist routes the way cmd.Run does, over a
// fake storage.
func wishlistRouter(db *repositorytest.FakeDB) (http.Handler, *services.AuthService) {
	authService := services.NewAuthService(nil, "test-secret", time.Hour)
	wishlistService := services.NewWishlistService(repository.NewWishlistRepository(db))
	h := NewWishlistHandler(wishlistService)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(authService))
		r.Post("/api/wishlist", h.Add)
		r.Get("/api/wishlist/{userId}", h.List)
	})
	return r, authService
}

func TestWishlistListRejectsForeignUser(t *testing.T) {
	router, authService := wishlistRouter(&repositorytest.FakeDB{})

	token, err := authService.IssueToken(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist/8", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWishlistListReturnsOwnDestinations(t *testing.T) {
	db := &repositorytest.FakeDB{
		QueryFn: func(sql string, args []any) (pgx.Rows, error) {
			return repositorytest.Rows(
				[]any{int64(3), "Kyoto", "Temples", 4.8, 35.0, 135.8, "images/destinations/kyoto.jpg"},
			), nil
		},
	}
	router, authService := wishlistRouter(db)

	token, err := authService.IssueToken(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist/7", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kyoto")
	assert.Equal(t, []any{int64(7)}, db.Queries[0].Args)
}

func TestWishlistAddDuplicateMapsToBadRequest(t *testing.T) {
	db := &repositorytest.FakeDB{
		ExecFn: func(sql string, args []any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag(""), &pgconn.PgError{Code: "23505"}
		},
	}
	router, authService := wishlistRouter(db)

	token, err := authService.IssueToken(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/wishlist", strings.NewReader(`{"destination_id":3}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWishlistAddRequiresAuth(t *testing.T) {
	router, _ := wishlistRouter(&repositorytest.FakeDB{})

	req := httptest.NewRequest(http.MethodPost, "/api/wishlist", strings.NewReader(`{"destination_id":3}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidatesBody(t *testing.T) {
	h := NewAuthHandler(services.NewAuthService(nil, "test-secret", time.Hour))

	cases := []string{
		`{"username":"al","email":"alice@example.com","password":"longenough"}`, // username too short
		`{"username":"alice","email":"not-an-email","password":"longenough"}`,
		`{"username":"alice","email":"alice@example.com","password":"short"}`,
		`not json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Register(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestAddReviewValidatesRating(t *testing.T) {
	h := NewReviewHandler(services.NewReviewService(repository.NewReviewRepository(&repositorytest.FakeDB{})))

	for _, body := range []string{
		`{"destination_id":1,"rating":0}`,
		`{"destination_id":1,"rating":6}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Add(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	h := NewHealthHandler(&repositorytest.FakeDB{
		QueryRowFn: func(sql string, args []any) pgx.Row {
			return repositorytest.Row(1)
		},
	})

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestTestDBReportsStorageFailure(t *testing.T) {
	h := NewHealthHandler(&repositorytest.FakeDB{
		QueryRowFn: func(sql string, args []any) pgx.Row {
			return repositorytest.RowErr(errors.New("connection refused"))
		},
	})

	rec := httptest.NewRecorder()
	h.TestDB(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
