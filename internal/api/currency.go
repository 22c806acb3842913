package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tripsaathi/tripsaathi/internal/currency"
)

const defaultAmount = 1000

// GetCurrency handles GET /api/v1/currency?destination=...&amount=...
// The service degrades to a fallback rate on provider failure, so the only
// error surfaced here is a missing API key.
func (h *Handlers) GetCurrency(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get("destination")

	amount := float64(defaultAmount)
	if raw := r.URL.Query().Get("amount"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "amount must be a non-negative number")
			return
		}
		amount = parsed
	}

	conv, err := h.currencySvc.Convert(r.Context(), destination, amount)
	if err != nil {
		if errors.Is(err, currency.ErrNotConfigured) {
			h.log.Error("exchange rate provider key missing", "destination", destination)
			writeError(w, http.StatusInternalServerError, "exchange rate provider not configured")
			return
		}
		h.log.Error("currency conversion failed", "destination", destination, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to convert currency")
		return
	}

	writeJSON(w, http.StatusOK, conv)
}
