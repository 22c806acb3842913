package api

import (
	"context"
	"time"

	"github.com/tripsaathi/tripsaathi/internal/ai"
	"github.com/tripsaathi/tripsaathi/internal/currency"
	"github.com/tripsaathi/tripsaathi/internal/flights"
	"github.com/tripsaathi/tripsaathi/internal/images"
	"github.com/tripsaathi/tripsaathi/internal/season"
	"github.com/tripsaathi/tripsaathi/internal/storage"
	"github.com/tripsaathi/tripsaathi/internal/weather"
)

// WeatherService resolves a city into a full weather report.
type WeatherService interface {
	Report(ctx context.Context, city string) (*weather.Report, error)
}

// CurrencyService converts INR amounts into a destination's currency.
type CurrencyService interface {
	Convert(ctx context.Context, destination string, amount float64) (*currency.Conversion, error)
}

// SeasonService classifies the destination catalog into peak and shoulder.
type SeasonService interface {
	Classify(ctx context.Context) (*season.Listing, error)
}

// FlightStatusService looks up a live flight by IATA number.
type FlightStatusService interface {
	Lookup(ctx context.Context, flightIATA string) (*flights.Flight, error)
}

// TrendService synthesizes a daily price-trend curve.
type TrendService interface {
	Forecast(destination string, start time.Time) *flights.TrendForecast
}

// ImageService resolves a destination photo; it never fails.
type ImageService interface {
	Resolve(ctx context.Context, destination string) *images.Photo
}

// TripParserService extracts a structured trip query from free text.
type TripParserService interface {
	Parse(ctx context.Context, query string) (*ai.TripQuery, error)
}

// PackingService generates a packing list for a trip.
type PackingService interface {
	Generate(ctx context.Context, req ai.PackingRequest) (*ai.PackingList, error)
}

// TripStore persists saved trips for user profiles.
type TripStore interface {
	SaveTrip(ctx context.Context, t *storage.Trip) (int, error)
	ListTrips(ctx context.Context, userID string) ([]*storage.Trip, error)
	DeleteTrip(ctx context.Context, id int, userID string) (bool, error)
}

// ResponseCache is the JSON response cache used by the slow-moving resolvers.
type ResponseCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, val any) error
}
