package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tripsaathi/tripsaathi/internal/flights"
)

// GetFlight handles GET /api/v1/flights?flight=AI101
func (h *Handlers) GetFlight(w http.ResponseWriter, r *http.Request) {
	flightIATA := r.URL.Query().Get("flight")
	if flightIATA == "" {
		writeError(w, http.StatusBadRequest, "flight parameter is required")
		return
	}

	record, err := h.flightStatus.Lookup(r.Context(), flightIATA)
	if err != nil {
		switch {
		case errors.Is(err, flights.ErrFlightNotFound):
			writeError(w, http.StatusNotFound, "flight not found")
		case errors.Is(err, flights.ErrNotConfigured):
			h.log.Error("flight status provider key missing", "flight", flightIATA)
			writeError(w, http.StatusInternalServerError, "flight status provider not configured")
		default:
			h.log.Error("flight lookup failed", "flight", flightIATA, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to look up flight")
		}
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// GetFlightTrends handles GET /api/v1/flights/trends?destination=...&startDate=...
// An absent or unparsable start date defaults to today; the synthesizer
// itself never fails.
func (h *Handlers) GetFlightTrends(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get("destination")

	start := time.Now()
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			start = parsed
		} else {
			h.log.Warn("unparsable startDate, defaulting to today", "startDate", raw)
		}
	}

	writeJSON(w, http.StatusOK, h.trends.Forecast(destination, start))
}
