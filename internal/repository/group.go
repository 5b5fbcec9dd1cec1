package repository

import (
	"context"
	"fmt"

	"travel-recommendation-backend/internal/models"
)

// GroupRepository handles database operations for travel groups
type GroupRepository struct {
	db DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithAdmin inserts a travel group and its creator's admin membership
// in one transaction. Either both rows commit or neither does; a group
// without an admin member must never be observable.
func (r *GroupRepository) CreateWithAdmin(ctx context.Context, group *models.TravelGroup) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertGroup := `
		INSERT INTO travel_groups (name, created_by)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, insertGroup, group.Name, group.CreatedBy).Scan(&group.ID); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	insertMember := `
		INSERT INTO group_members (group_id, user_id, role)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.Exec(ctx, insertMember, group.ID, group.CreatedBy, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to add group admin: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit group creation: %w", err)
	}
	return nil
}

// ListByUser returns the groups a user belongs to, annotated with the
// user's role in each.
func (r *GroupRepository) ListByUser(ctx context.Context, userID int64) ([]*models.GroupWithRole, error) {
	query := `
		SELECT tg.id, tg.name, tg.created_by, gm.role
		FROM travel_groups tg
		JOIN group_members gm ON gm.group_id = tg.id
		WHERE gm.user_id = $1
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*models.GroupWithRole
	for rows.Next() {
		var g models.GroupWithRole
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedBy, &g.Role); err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, &g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating groups: %w", err)
	}

	return groups, nil
}

// AddMember inserts a membership with the default role. Duplicate
// memberships are not checked here; the same user can currently be added
// twice.
func (r *GroupRepository) AddMember(ctx context.Context, groupID, userID int64) error {
	query := `INSERT INTO group_members (group_id, user_id, role) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, query, groupID, userID, models.RoleMember)
	if err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}
