package handlers

import (
	"net/http"
	"strconv"

	"travel-recommendation-backend/internal/models"
	"travel-recommendation-backend/internal/repository"
	"travel-recommendation-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// DestinationHandler handles destination search, facet, nearby and
// restaurant requests
type DestinationHandler struct {
	destService *services.DestinationService
}

// NewDestinationHandler creates a new destination handler
func NewDestinationHandler(destService *services.DestinationService) *DestinationHandler {
	return &DestinationHandler{destService: destService}
}

// Search handles GET /api/destinations?type&budget&season
func (h *DestinationHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter := repository.DestinationFilter{
		PreferenceType: r.URL.Query().Get("type"),
		BudgetRange:    r.URL.Query().Get("budget"),
		Season:         r.URL.Query().Get("season"),
	}

	results, err := h.destService.Search(r.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to search destinations")
		respondServiceError(w, err)
		return
	}

	if results == nil {
		results = []*models.DestinationSummary{}
	}
	respondJSON(w, http.StatusOK, results)
}

// Facets handles GET /api/preferences
func (h *DestinationHandler) Facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.destService.Facets(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list facets")
		respondServiceError(w, err)
		return
	}

	if facets == nil {
		facets = []*models.FacetValues{}
	}
	respondJSON(w, http.StatusOK, facets)
}

// Nearby handles GET /api/nearby/{destinationId}?radius
func (h *DestinationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	anchorID, err := pathID(r, "destinationId")
	if err != nil {
		respondError(w, "Invalid destination id", http.StatusBadRequest)
		return
	}

	radius := services.DefaultNearbyRadiusKm
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, "Invalid radius", http.StatusBadRequest)
			return
		}
	}

	nearby, err := h.destService.Nearby(r.Context(), anchorID, radius)
	if err != nil {
		log.Error().Err(err).Int64("destination_id", anchorID).Msg("Failed to find nearby destinations")
		respondServiceError(w, err)
		return
	}

	if nearby == nil {
		nearby = []*models.NearbyDestination{}
	}
	respondJSON(w, http.StatusOK, nearby)
}

// Restaurants handles GET /api/restaurants/{destinationId}
func (h *DestinationHandler) Restaurants(w http.ResponseWriter, r *http.Request) {
	destinationID, err := pathID(r, "destinationId")
	if err != nil {
		respondError(w, "Invalid destination id", http.StatusBadRequest)
		return
	}

	restaurants, err := h.destService.Restaurants(r.Context(), destinationID)
	if err != nil {
		log.Error().Err(err).Int64("destination_id", destinationID).Msg("Failed to list restaurants")
		respondServiceError(w, err)
		return
	}

	if restaurants == nil {
		restaurants = []*models.RestaurantWithFoods{}
	}
	respondJSON(w, http.StatusOK, restaurants)
}
