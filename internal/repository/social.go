package repository

import (
	"context"
	"fmt"
	"time"

	"travel-recommendation-backend/internal/models"
)

// SocialRepository handles database operations for social connections.
// Connections are stored directionally but the relation is symmetric; every
// read that must treat it as undirected lives here.
type SocialRepository struct {
	db DB
}

// NewSocialRepository creates a new social repository
func NewSocialRepository(db DB) *SocialRepository {
	return &SocialRepository{db: db}
}

// ListFriends returns the users connected to userID through an accepted
// connection in either direction, excluding the user themselves.
func (r *SocialRepository) ListFriends(ctx context.Context, userID int64) ([]*models.UserProfile, error) {
	query := `
		SELECT u.id, u.username, u.email
		FROM users u
		JOIN social_connections sc ON (sc.friend_id = u.id OR sc.user_id = u.id)
		WHERE (sc.user_id = $1 OR sc.friend_id = $1)
		AND sc.status = $2
		AND u.id != $1
	`
	rows, err := r.db.Query(ctx, query, userID, models.ConnectionAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	defer rows.Close()

	var friends []*models.UserProfile
	for rows.Next() {
		var f models.UserProfile
		if err := rows.Scan(&f.ID, &f.Username, &f.Email); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		friends = append(friends, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating friends: %w", err)
	}

	return friends, nil
}

// ConnectionExists checks for a connection between two users in either
// direction, regardless of status.
func (r *SocialRepository) ConnectionExists(ctx context.Context, userID, friendID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM social_connections
			WHERE (user_id = $1 AND friend_id = $2)
			OR (user_id = $2 AND friend_id = $1)
		)
	`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, friendID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check connection existence: %w", err)
	}
	return exists, nil
}

// CreateConnection inserts a pending connection from userID to friendID.
func (r *SocialRepository) CreateConnection(ctx context.Context, userID, friendID int64) error {
	query := `
		INSERT INTO social_connections (user_id, friend_id, status, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, userID, friendID, models.ConnectionPending, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create connection: %w", err)
	}
	return nil
}
