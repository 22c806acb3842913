package api

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds the chi router. Resolver endpoints and health are public;
// the saved-trips routes require bearer auth. Rate limiting applies globally:
// 60 requests per minute per IP.
func NewRouter(handlers *Handlers, token string, db, redisClient pinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(db, redisClient, log))

	r.Get("/api/v1/weather", handlers.GetWeather)
	r.Get("/api/v1/currency", handlers.GetCurrency)
	r.Get("/api/v1/destinations/seasonal", handlers.GetSeasonalDestinations)
	r.Get("/api/v1/flights", handlers.GetFlight)
	r.Get("/api/v1/flights/trends", handlers.GetFlightTrends)
	r.Get("/api/v1/images/destination", handlers.GetDestinationImage)
	r.Post("/api/v1/ai/parse-trip", handlers.ParseTrip)
	r.Post("/api/v1/ai/packing-list", handlers.GeneratePackingList)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(token))
		r.Post("/api/v1/trips", handlers.CreateTrip)
		r.Get("/api/v1/trips", handlers.ListTrips)
		r.Delete("/api/v1/trips/{id}", handlers.DeleteTrip)
	})

	return r
}
