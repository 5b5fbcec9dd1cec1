package models

import "time"

// Destination is a travel destination in the catalog.
type Destination struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    string  `json:"image_url"`
}

// DestinationSummary is a destination annotated with aggregated preference
// facets and review statistics, as returned by the search endpoint.
type DestinationSummary struct {
	Destination
	PreferenceTypes []string `json:"preference_types"`
	BudgetRanges    []string `json:"budget_ranges"`
	Seasons         []string `json:"seasons"`
	TravelStyles    []string `json:"travel_styles"`
	AverageRating   float64  `json:"average_rating"`
	ReviewCount     int      `json:"review_count"`
}

// NearbyDestination is a destination annotated with its great-circle
// distance in kilometers from an anchor destination.
type NearbyDestination struct {
	Destination
	DistanceKm float64 `json:"distance"`
}

// FacetValues is one distinct combination of filterable preference facets.
type FacetValues struct {
	PreferenceType string `json:"preference_type"`
	BudgetRange    string `json:"budget_range"`
	Season         string `json:"season"`
}

// User represents a registered user. PasswordHash never leaves the backend.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Review is a user's review of a destination.
type Review struct {
	ID            int64     `json:"id"`
	DestinationID int64     `json:"destination_id"`
	UserID        int64     `json:"user_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
	Username      string    `json:"username,omitempty"`
}

// Connection statuses. Only the pending state is created through the API;
// the accepted state is what the friends read filters on.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
)

// SocialConnection is a directed friendship edge. Reads treat the relation
// as symmetric.
type SocialConnection struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	FriendID  int64     `json:"friend_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile is the public slice of a user, exposed in friend listings
// and login responses.
type UserProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Group member roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// TravelGroup is a group of users planning travel together.
type TravelGroup struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedBy int64  `json:"created_by"`
}

// GroupWithRole is a travel group annotated with the querying user's role.
type GroupWithRole struct {
	TravelGroup
	Role string `json:"role"`
}

// Restaurant belongs to a destination.
type Restaurant struct {
	ID            int64   `json:"id"`
	DestinationID int64   `json:"destination_id"`
	Name          string  `json:"name"`
	CuisineType   string  `json:"cuisine_type"`
	PriceRange    string  `json:"price_range"`
	Rating        float64 `json:"rating"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

// RestaurantWithFoods is a restaurant annotated with a comma-joined list of
// its popular food names.
type RestaurantWithFoods struct {
	Restaurant
	PopularFoods string `json:"popular_foods"`
}
