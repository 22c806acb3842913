package api

import (
	"errors"
	"net/http"

	"github.com/tripsaathi/tripsaathi/internal/season"
	"github.com/tripsaathi/tripsaathi/internal/weather"
)

const seasonalCacheKey = "destinations:seasonal"

// GetSeasonalDestinations handles GET /api/v1/destinations/seasonal.
func (h *Handlers) GetSeasonalDestinations(w http.ResponseWriter, r *http.Request) {
	var cached season.Listing
	hit, err := h.cache.Get(r.Context(), seasonalCacheKey, &cached)
	if err != nil {
		h.log.Warn("seasonal cache get failed", "err", err)
	}
	if hit {
		writeJSON(w, http.StatusOK, &cached)
		return
	}

	listing, err := h.seasons.Classify(r.Context())
	if err != nil {
		if errors.Is(err, weather.ErrNotConfigured) {
			h.log.Error("weather provider key missing for seasonal listing")
			writeError(w, http.StatusInternalServerError, "weather provider not configured")
			return
		}
		h.log.Error("seasonal classification failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to build seasonal listing")
		return
	}

	if err := h.cache.Set(r.Context(), seasonalCacheKey, listing); err != nil {
		h.log.Warn("seasonal cache set failed", "err", err)
	}

	writeJSON(w, http.StatusOK, listing)
}
