package api

import "net/http"

// GetDestinationImage handles GET /api/v1/images/destination?destination=...
// The resolver degrades to a static fallback internally, so this endpoint
// always answers 200.
func (h *Handlers) GetDestinationImage(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get("destination")
	writeJSON(w, http.StatusOK, h.imagesSvc.Resolve(r.Context(), destination))
}
