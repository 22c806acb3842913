package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/tripsaathi/tripsaathi/internal/ai"
	"github.com/tripsaathi/tripsaathi/internal/api"
	"github.com/tripsaathi/tripsaathi/internal/cache"
	"github.com/tripsaathi/tripsaathi/internal/currency"
	"github.com/tripsaathi/tripsaathi/internal/flights"
	"github.com/tripsaathi/tripsaathi/internal/images"
	"github.com/tripsaathi/tripsaathi/internal/season"
	"github.com/tripsaathi/tripsaathi/internal/storage"
	"github.com/tripsaathi/tripsaathi/internal/weather"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	databaseURL := mustEnv("DATABASE_URL")
	redisURL := mustEnv("REDIS_URL")
	bearerToken := mustEnv("BEARER_TOKEN")
	port := getEnv("PORT", "8080")

	// Provider keys are optional at boot: each resolver validates its key
	// per-request and fails with a configuration error when absent.
	weatherKey := os.Getenv("OPENWEATHER_API_KEY")
	ratesKey := os.Getenv("EXCHANGE_RATE_API_KEY")
	flightKey := os.Getenv("AVIATIONSTACK_API_KEY")
	photoKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	modelKey := os.Getenv("GEMINI_API_KEY")

	ctx := context.Background()

	pool, err := storage.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	if err := storage.RunMigrations(ctx, pool, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied")

	redisClient, err := cache.Connect(ctx, redisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	// Wire dependencies.
	weatherClient := weather.NewClient(weatherKey)
	modelClient := ai.NewClient(modelKey)

	handlers := api.NewHandlers(
		weather.NewService(weatherClient),
		currency.NewService(currency.NewRatesClient(ratesKey), log),
		season.NewService(weatherClient, log),
		flights.NewStatusClient(flightKey),
		flights.NewSynthesizer(),
		images.NewService(images.NewPhotoClient(photoKey), log),
		ai.NewParser(modelClient),
		ai.NewPackingGenerator(modelClient),
		storage.NewRepository(pool),
		cache.New(redisClient),
		log,
	)

	dbPinger := &pgxPoolPinger{pool: pool}
	redisPinger := &redisPingerAdapter{client: redisClient}

	router := api.NewRouter(handlers, bearerToken, dbPinger, redisPinger, log)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable not set", "key", key)
		os.Exit(1)
	}
	return v
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// pgxPoolPinger adapts pgxpool.Pool to the api health-check pinger.
type pgxPoolPinger struct {
	pool interface {
		Ping(ctx context.Context) error
	}
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to the api health-check pinger.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
