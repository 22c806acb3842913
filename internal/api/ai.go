package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tripsaathi/tripsaathi/internal/ai"
)

type parseTripRequest struct {
	Query string `json:"query"`
}

// ParseTrip handles POST /api/v1/ai/parse-trip with body {"query": "..."}.
func (h *Handlers) ParseTrip(w http.ResponseWriter, r *http.Request) {
	var req parseTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":               "invalid request body",
			"parsed_successfully": false,
		})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":               "query must not be empty",
			"parsed_successfully": false,
		})
		return
	}

	parsed, err := h.parser.Parse(r.Context(), req.Query)
	if err != nil {
		msg := "failed to parse trip query"
		switch {
		case errors.Is(err, ai.ErrNotConfigured):
			h.log.Error("generative model key missing")
			msg = "generative model provider not configured"
		case errors.Is(err, ai.ErrMalformedOutput):
			h.log.Error("trip query parse produced malformed model output", "err", err)
			msg = "model returned malformed output"
		default:
			h.log.Error("trip query parse failed", "err", err)
		}
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":               msg,
			"parsed_successfully": false,
		})
		return
	}

	writeJSON(w, http.StatusOK, parsed)
}

// GeneratePackingList handles POST /api/v1/ai/packing-list.
func (h *Handlers) GeneratePackingList(w http.ResponseWriter, r *http.Request) {
	var req ai.PackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Destination == "" {
		writeError(w, http.StatusBadRequest, "destination is required")
		return
	}

	list, err := h.packing.Generate(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrNotConfigured):
			h.log.Error("generative model key missing")
			writeError(w, http.StatusInternalServerError, "generative model provider not configured")
		case errors.Is(err, ai.ErrMalformedOutput):
			h.log.Error("packing list produced malformed model output", "destination", req.Destination, "err", err)
			writeError(w, http.StatusInternalServerError, "model returned malformed output")
		default:
			h.log.Error("packing list generation failed", "destination", req.Destination, "err", err)
			writeError(w, http.StatusInternalServerError, "failed to generate packing list")
		}
		return
	}

	writeJSON(w, http.StatusOK, list)
}
