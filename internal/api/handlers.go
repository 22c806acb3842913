package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	weather      WeatherService
	currencySvc  CurrencyService
	seasons      SeasonService
	flightStatus FlightStatusService
	trends       TrendService
	imagesSvc    ImageService
	parser       TripParserService
	packing      PackingService
	trips        TripStore
	cache        ResponseCache
	log          *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(
	weather WeatherService,
	currencySvc CurrencyService,
	seasons SeasonService,
	flightStatus FlightStatusService,
	trends TrendService,
	imagesSvc ImageService,
	parser TripParserService,
	packing PackingService,
	trips TripStore,
	cache ResponseCache,
	log *slog.Logger,
) *Handlers {
	return &Handlers{
		weather:      weather,
		currencySvc:  currencySvc,
		seasons:      seasons,
		flightStatus: flightStatus,
		trends:       trends,
		imagesSvc:    imagesSvc,
		parser:       parser,
		packing:      packing,
		trips:        trips,
		cache:        cache,
		log:          log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a {"error": msg} payload with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity; 200 when both respond, 503 otherwise.
func HealthHandlerFunc(db, redis pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
