// Package season classifies the destination catalog into peak and shoulder
// season, decorated with a live temperature snapshot per destination.
package season

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tripsaathi/tripsaathi/internal/weather"
)

const listSize = 4

// Discount bounds for shoulder-season destinations, half-open: [20, 40).
const (
	discountMin = 20
	discountMax = 40
)

// fallbackConditions is substituted when a destination's weather fetch fails.
var fallbackConditions = weather.Conditions{Temp: 28, Condition: "Clear"}

// Entry is one classified destination.
type Entry struct {
	Destination string  `json:"destination"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	CurrentTemp float64 `json:"current_temp"`
	Condition   string  `json:"condition"`
	IsPeak      bool    `json:"is_peak"`
	Discount    *int    `json:"discount"`
}

// Listing is the seasonal answer: the first four peak and first four
// shoulder destinations in catalog order.
type Listing struct {
	Peak     []Entry `json:"peak"`
	Shoulder []Entry `json:"shoulder"`
}

// currentWeather is the interface satisfied by weather.Client.
type currentWeather interface {
	Current(ctx context.Context, lat, lon float64) (*weather.Conditions, error)
}

// Service builds seasonal listings from the static catalog plus live weather.
type Service struct {
	weather currentWeather
	log     *slog.Logger
	now     func() time.Time
	rng     *rand.Rand
}

// NewService constructs a Service with the system clock and an unseeded
// random source for discounts.
func NewService(w currentWeather, log *slog.Logger) *Service {
	return &Service{
		weather: w,
		log:     log,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewServiceWithClock constructs a Service with injectable clock and random
// source (for tests).
func NewServiceWithClock(w currentWeather, log *slog.Logger, now func() time.Time, rng *rand.Rand) *Service {
	return &Service{weather: w, log: log, now: now, rng: rng}
}

// Classify fetches current weather for every catalog destination in parallel
// and partitions the catalog by peak month. A failed fetch never drops a
// destination: it falls back to 28°C Clear and is classified from the static
// table alone. Only a missing provider key fails the whole call.
func (s *Service) Classify(ctx context.Context) (*Listing, error) {
	conditions := make([]weather.Conditions, len(Catalog))
	var notConfigured atomic.Bool

	g, gCtx := errgroup.WithContext(ctx)
	for i, dest := range Catalog {
		g.Go(func() error {
			cond, err := s.weather.Current(gCtx, dest.Lat, dest.Lon)
			if err != nil {
				if errors.Is(err, weather.ErrNotConfigured) {
					notConfigured.Store(true)
				} else {
					s.log.Warn("seasonal weather fetch failed", "destination", dest.Name, "err", err)
				}
				conditions[i] = fallbackConditions
				return nil
			}
			conditions[i] = *cond
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if notConfigured.Load() {
		return nil, weather.ErrNotConfigured
	}

	month := s.now().Month()
	listing := &Listing{
		Peak:     make([]Entry, 0, listSize),
		Shoulder: make([]Entry, 0, listSize),
	}

	for i, dest := range Catalog {
		e := Entry{
			Destination: dest.Name,
			Country:     dest.Country,
			Lat:         dest.Lat,
			Lon:         dest.Lon,
			CurrentTemp: conditions[i].Temp,
			Condition:   conditions[i].Condition,
			IsPeak:      dest.isPeakMonth(month),
		}
		if e.IsPeak {
			if len(listing.Peak) < listSize {
				listing.Peak = append(listing.Peak, e)
			}
			continue
		}
		discount := discountMin + s.rng.Intn(discountMax-discountMin)
		e.Discount = &discount
		if len(listing.Shoulder) < listSize {
			listing.Shoulder = append(listing.Shoulder, e)
		}
	}

	return listing, nil
}
