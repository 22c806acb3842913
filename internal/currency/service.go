package currency

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// fallbackRate is the fixed INR→USD rate substituted when the live lookup
// fails. The caller still gets a 200-shaped answer with an error marker.
const fallbackRate = 0.012

// Conversion is the currency answer for a destination.
type Conversion struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	ToName      string  `json:"to_name"`
	ToSymbol    string  `json:"to_symbol"`
	Rate        float64 `json:"rate"`
	Converted   float64 `json:"converted"`
	LastUpdated string  `json:"last_updated"`
	Error       string  `json:"error,omitempty"`
}

// rateProvider is the interface satisfied by RatesClient.
type rateProvider interface {
	Rate(ctx context.Context, code string) (float64, error)
}

// Service converts INR amounts into a destination's local currency.
type Service struct {
	rates rateProvider
	log   *slog.Logger
	now   func() time.Time
}

// NewService constructs a Service backed by the given rates client.
func NewService(rates rateProvider, log *slog.Logger) *Service {
	return &Service{rates: rates, log: log, now: time.Now}
}

// NewServiceWithClock constructs a Service with an injectable clock (for tests).
func NewServiceWithClock(rates rateProvider, log *slog.Logger, now func() time.Time) *Service {
	return &Service{rates: rates, log: log, now: now}
}

// Convert maps the destination to its currency and converts amount at the
// live INR rate. A missing API key is a hard error; every other failure
// degrades to the fixed USD fallback rate with an error marker so the
// caller is never blocked.
func (s *Service) Convert(ctx context.Context, destination string, amount float64) (*Conversion, error) {
	info := Lookup(destination)

	rate, err := s.rates.Rate(ctx, info.Code)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		s.log.Warn("rate lookup failed, using fallback rate", "destination", destination, "code", info.Code, "err", err)
		return &Conversion{
			From:        "INR",
			To:          fallbackInfo.Code,
			ToName:      fallbackInfo.Name,
			ToSymbol:    fallbackInfo.Symbol,
			Rate:        fallbackRate,
			Converted:   amount * fallbackRate,
			LastUpdated: s.now().UTC().Format("2006-01-02"),
			Error:       "Using fallback rate",
		}, nil
	}

	return &Conversion{
		From:        "INR",
		To:          info.Code,
		ToName:      info.Name,
		ToSymbol:    info.Symbol,
		Rate:        rate,
		Converted:   amount * rate,
		LastUpdated: s.now().UTC().Format("2006-01-02"),
	}, nil
}
