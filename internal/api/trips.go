package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tripsaathi/tripsaathi/internal/storage"
)

// CreateTrip handles POST /api/v1/trips.
func (h *Handlers) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var trip storage.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if trip.UserID == "" || trip.Destination == "" {
		writeError(w, http.StatusBadRequest, "user_id and destination are required")
		return
	}

	id, err := h.trips.SaveTrip(r.Context(), &trip)
	if err != nil {
		h.log.Error("trip save failed", "user", trip.UserID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to save trip")
		return
	}

	trip.ID = id
	writeJSON(w, http.StatusCreated, &trip)
}

// ListTrips handles GET /api/v1/trips?user_id=...
func (h *Handlers) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id parameter is required")
		return
	}

	trips, err := h.trips.ListTrips(r.Context(), userID)
	if err != nil {
		h.log.Error("trip list failed", "user", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list trips")
		return
	}
	if trips == nil {
		trips = []*storage.Trip{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"trips": trips})
}

// DeleteTrip handles DELETE /api/v1/trips/{id}?user_id=...
func (h *Handlers) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "trip id must be an integer")
		return
	}
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id parameter is required")
		return
	}

	deleted, err := h.trips.DeleteTrip(r.Context(), id, userID)
	if err != nil {
		h.log.Error("trip delete failed", "id", id, "user", userID, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to delete trip")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "trip not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
