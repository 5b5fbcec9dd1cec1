package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClausesEmpty(t *testing.T) {
	var c Clauses
	assert.Equal(t, "", c.Where())
	assert.Empty(t, c.Args())
}

func TestClausesNumbering(t *testing.T) {
	var c Clauses
	c.Add("p.preference_type = ?", "beach")
	c.Add("p.budget_range = ?", "medium")
	c.Add("p.season = ?", "summer")

	assert.Equal(t, "WHERE p.preference_type = $1 AND p.budget_range = $2 AND p.season = $3", c.Where())
	assert.Equal(t, []any{"beach", "medium", "summer"}, c.Args())
}

func TestClausesMultiplePlaceholders(t *testing.T) {
	var c Clauses
	c.Add("status = ?", "accepted")
	c.Add("(user_id = ? OR friend_id = ?)", int64(1), int64(2))

	assert.Equal(t, "WHERE status = $1 AND (user_id = $2 OR friend_id = $3)", c.Where())
	assert.Equal(t, []any{"accepted", int64(1), int64(2)}, c.Args())
}

func TestClausesPlaceholderMismatchPanics(t *testing.T) {
	var c Clauses
	assert.Panics(t, func() {
		c.Add("latitude = ?")
	})
	assert.Panics(t, func() {
		c.Add("latitude = ?", 1.0, 2.0)
	})
}
