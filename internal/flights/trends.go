// Package flights synthesizes daily price-trend curves and proxies live
// flight-status lookups.
package flights

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	trendWindowDays = 20
	weekendPremium  = 1.15

	// randomFactor is drawn uniformly from [factorMin, factorMax) per day.
	factorMin = 0.90
	factorMax = 1.15

	// savingsThreshold is the minimum saving (INR) that earns a
	// shift-your-dates recommendation.
	savingsThreshold = 1500
)

// TrendPoint is one simulated day of pricing.
type TrendPoint struct {
	Date         string `json:"date"`
	Price        int    `json:"price"`
	Availability string `json:"availability"`
}

// TrendForecast is the full price-trend answer for a destination and window.
type TrendForecast struct {
	Destination    string         `json:"destination"`
	Trends         []TrendPoint   `json:"trends"`
	LowestPrice    int            `json:"lowest_price"`
	LowestDate     string         `json:"lowest_date"`
	Savings        int            `json:"savings"`
	Miles          int            `json:"miles"`
	BestFlight     BestFlightInfo `json:"best_flight"`
	Recommendation string         `json:"recommendation,omitempty"`
}

// Synthesizer generates randomized-but-plausible price curves. The random
// source is injectable so tests can seed it.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer constructs a Synthesizer seeded from the wall clock.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSynthesizerWithSource constructs a Synthesizer with an explicit random
// source (for deterministic tests).
func NewSynthesizerWithSource(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Forecast simulates 20 consecutive daily prices starting at start. Each
// price is base fare × weekend premium (Fri/Sat/Sun) × a uniform factor in
// [0.9, 1.15), rounded. Savings compares the requested date against the
// cheapest day in the window.
func (s *Synthesizer) Forecast(destination string, start time.Time) *TrendForecast {
	base := float64(BasePrice(destination))

	trends := make([]TrendPoint, 0, trendWindowDays)
	lowestIdx := 0

	for i := 0; i < trendWindowDays; i++ {
		day := start.AddDate(0, 0, i)

		premium := 1.0
		switch day.Weekday() {
		case time.Friday, time.Saturday, time.Sunday:
			premium = weekendPremium
		}

		factor := factorMin + s.rng.Float64()*(factorMax-factorMin)
		price := int(math.Round(base * premium * factor))

		trends = append(trends, TrendPoint{
			Date:         day.Format("2006-01-02"),
			Price:        price,
			Availability: availability(factor),
		})
		if price < trends[lowestIdx].Price {
			lowestIdx = i
		}
	}

	f := &TrendForecast{
		Destination: destination,
		Trends:      trends,
		LowestPrice: trends[lowestIdx].Price,
		LowestDate:  trends[lowestIdx].Date,
		Savings:     trends[0].Price - trends[lowestIdx].Price,
		Miles:       Miles(destination),
		BestFlight:  BestFlight(destination),
	}

	if f.Savings > savingsThreshold {
		f.Recommendation = fmt.Sprintf(
			"Fly on %s instead and save ₹%d on your %s trip.",
			f.LowestDate, f.Savings, destination,
		)
	}

	return f
}

// availability grades a day's seat availability from its price factor:
// cheap days sell out last.
func availability(factor float64) string {
	switch {
	case factor < 0.98:
		return "high"
	case factor < 1.08:
		return "medium"
	default:
		return "low"
	}
}
