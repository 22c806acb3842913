package api

import (
	"errors"
	"net/http"

	"github.com/tripsaathi/tripsaathi/internal/cache"
	"github.com/tripsaathi/tripsaathi/internal/weather"
)

// GetWeather handles GET /api/v1/weather?city=...
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		writeError(w, http.StatusBadRequest, "city parameter is required")
		return
	}

	key := cache.Key("weather", city)

	var cached weather.Report
	hit, err := h.cache.Get(r.Context(), key, &cached)
	if err != nil {
		h.log.Warn("weather cache get failed", "city", city, "err", err)
	}
	if hit {
		writeJSON(w, http.StatusOK, &cached)
		return
	}

	report, err := h.weather.Report(r.Context(), city)
	if err != nil {
		switch {
		case errors.Is(err, weather.ErrLocationNotFound):
			writeError(w, http.StatusNotFound, "location not found")
		case errors.Is(err, weather.ErrNotConfigured):
			h.log.Error("weather provider key missing", "city", city)
			writeError(w, http.StatusInternalServerError, "weather provider not configured")
		default:
			h.log.Error("weather report failed", "city", city, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to fetch weather")
		}
		return
	}

	if err := h.cache.Set(r.Context(), key, report); err != nil {
		h.log.Warn("weather cache set failed", "city", city, "err", err)
	}

	writeJSON(w, http.StatusOK, report)
}
