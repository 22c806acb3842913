package currency

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tripsaathi/tripsaathi/internal/fetch"
)

// ErrNotConfigured means the exchange-rate API key is absent.
var ErrNotConfigured = errors.New("exchange rate provider not configured")

const ratesDefaultURL = "https://v6.exchangerate-api.com/v6"

// RatesClient fetches live INR-base exchange rates.
type RatesClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewRatesClient constructs a RatesClient with the given API key.
func NewRatesClient(apiKey string) *RatesClient {
	return &RatesClient{apiKey: apiKey, baseURL: ratesDefaultURL, client: fetch.NewClient()}
}

// NewRatesClientWithURL constructs a RatesClient pointing at a custom base URL (for tests).
func NewRatesClientWithURL(baseURL, apiKey string) *RatesClient {
	return &RatesClient{apiKey: apiKey, baseURL: baseURL, client: fetch.NewClient()}
}

// Configured reports whether an API key is present.
func (c *RatesClient) Configured() bool {
	return c.apiKey != ""
}

type ratesResponse struct {
	Result          string             `json:"result"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// Rate returns the INR→code conversion rate.
func (c *RatesClient) Rate(ctx context.Context, code string) (float64, error) {
	if !c.Configured() {
		return 0, ErrNotConfigured
	}

	endpoint := c.baseURL + "/" + c.apiKey + "/latest/INR"

	var raw ratesResponse
	if err := fetch.GetJSON(ctx, c.client, endpoint, &raw); err != nil {
		return 0, fmt.Errorf("fetching INR rates: %w", err)
	}

	rate, ok := raw.ConversionRates[code]
	if !ok {
		return 0, fmt.Errorf("no INR rate for %s", code)
	}
	return rate, nil
}
