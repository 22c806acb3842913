package weather

import (
	"context"
	"fmt"
	"strings"
)

const maxForecastDays = 7

// trendThreshold is the mean-temperature delta (°C) that separates a stable
// trend from an increasing or decreasing one.
const trendThreshold = 2.0

// provider is the interface satisfied by Client.
type provider interface {
	Geocode(ctx context.Context, city string) (*Place, error)
	Forecast(ctx context.Context, lat, lon float64) ([]ForecastEntry, error)
	Current(ctx context.Context, lat, lon float64) (*Conditions, error)
}

// Service resolves a city into a full weather report.
type Service struct {
	p provider
}

// NewService constructs a Service backed by the given provider client.
func NewService(p provider) *Service {
	return &Service{p: p}
}

// Report geocodes the city, then fetches forecast and current conditions
// sequentially. The 3-hourly forecast is reduced to one entry per calendar
// date, capped at seven days, before trend classification.
func (s *Service) Report(ctx context.Context, city string) (*Report, error) {
	place, err := s.p.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	raw, err := s.p.Forecast(ctx, place.Lat, place.Lon)
	if err != nil {
		return nil, fmt.Errorf("weather report for %s: %w", city, err)
	}

	current, err := s.p.Current(ctx, place.Lat, place.Lon)
	if err != nil {
		return nil, fmt.Errorf("weather report for %s: %w", city, err)
	}

	daily := reduceDaily(raw)

	location := place.Name
	if place.Country != "" {
		location += ", " + place.Country
	}

	return &Report{
		Location: location,
		Current:  *current,
		Forecast: daily,
		Trend:    classifyTrend(daily),
		HasRain:  hasRain(daily),
	}, nil
}

// reduceDaily keeps the first entry seen per distinct calendar date, in
// provider order, up to maxForecastDays entries. Dates are truncated to
// YYYY-MM-DD.
func reduceDaily(entries []ForecastEntry) []ForecastEntry {
	seen := make(map[string]bool, maxForecastDays)
	daily := make([]ForecastEntry, 0, maxForecastDays)

	for _, e := range entries {
		date := e.Date
		if len(date) > 10 {
			date = date[:10]
		}
		if seen[date] {
			continue
		}
		seen[date] = true

		e.Date = date
		daily = append(daily, e)
		if len(daily) == maxForecastDays {
			break
		}
	}
	return daily
}

// classifyTrend compares the mean of the first three daily temperatures
// against the mean of the last three. With fewer than three entries the
// endpoints are compared directly.
func classifyTrend(daily []ForecastEntry) string {
	if len(daily) == 0 {
		return "stable"
	}

	n := 3
	if len(daily) < n {
		n = 1
	}

	var first, last float64
	for i := 0; i < n; i++ {
		first += daily[i].Temp
		last += daily[len(daily)-1-i].Temp
	}
	first /= float64(n)
	last /= float64(n)

	switch {
	case last-first > trendThreshold:
		return "increasing"
	case first-last > trendThreshold:
		return "decreasing"
	default:
		return "stable"
	}
}

// hasRain reports whether any forecast entry mentions rain or storms.
func hasRain(daily []ForecastEntry) bool {
	for _, e := range daily {
		text := strings.ToLower(e.Condition + " " + e.Description)
		if strings.Contains(text, "rain") || strings.Contains(text, "storm") {
			return true
		}
	}
	return false
}
