package flights

import "strings"

// defaultBasePrice is used for destinations missing from the price table, INR.
const defaultBasePrice = 20000

// basePrices maps a lowercase destination substring to a round-trip base
// fare from a major Indian metro, INR. First match wins in declaration order.
var basePrices = []struct {
	key   string
	price int
}{
	{"dubai", 21500},
	{"uae", 21500},
	{"bali", 27000},
	{"singapore", 24500},
	{"maldives", 26000},
	{"phuket", 19500},
	{"bangkok", 18500},
	{"thailand", 18500},
	{"goa", 8500},
	{"manali", 7500},
	{"srinagar", 9000},
	{"port blair", 12500},
}

// BasePrice resolves the base fare for a destination.
func BasePrice(destination string) int {
	d := strings.ToLower(destination)
	for _, e := range basePrices {
		if strings.Contains(d, e.key) {
			return e.price
		}
	}
	return defaultBasePrice
}

// airMiles maps a lowercase destination substring to an approximate one-way
// distance from Delhi, in miles. Illustrative content for the trends card.
var airMiles = []struct {
	key   string
	miles int
}{
	{"dubai", 1370},
	{"uae", 1370},
	{"bali", 3580},
	{"singapore", 2570},
	{"maldives", 1880},
	{"phuket", 2180},
	{"bangkok", 1830},
	{"thailand", 1830},
	{"goa", 930},
	{"manali", 250},
	{"srinagar", 400},
	{"port blair", 1550},
}

// Miles resolves the approximate flight distance for a destination.
func Miles(destination string) int {
	d := strings.ToLower(destination)
	for _, e := range airMiles {
		if strings.Contains(d, e.key) {
			return e.miles
		}
	}
	return 1500
}

// BestFlightInfo is a fabricated representative flight for a destination.
// It is illustrative content for the trends card, not a live lookup.
type BestFlightInfo struct {
	Airline      string `json:"airline"`
	FlightNumber string `json:"flight_number"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"`
}

var bestFlights = []struct {
	key    string
	flight BestFlightInfo
}{
	{"dubai", BestFlightInfo{Airline: "Emirates", FlightNumber: "EK511", Departure: "04:30", Arrival: "06:45", Duration: "3h 45m"}},
	{"uae", BestFlightInfo{Airline: "Emirates", FlightNumber: "EK511", Departure: "04:30", Arrival: "06:45", Duration: "3h 45m"}},
	{"bali", BestFlightInfo{Airline: "Singapore Airlines", FlightNumber: "SQ403", Departure: "23:55", Arrival: "09:25", Duration: "8h 0m"}},
	{"singapore", BestFlightInfo{Airline: "Singapore Airlines", FlightNumber: "SQ401", Departure: "09:00", Arrival: "17:10", Duration: "5h 40m"}},
	{"maldives", BestFlightInfo{Airline: "IndiGo", FlightNumber: "6E1751", Departure: "08:45", Arrival: "11:05", Duration: "3h 50m"}},
	{"phuket", BestFlightInfo{Airline: "Thai Airways", FlightNumber: "TG338", Departure: "13:20", Arrival: "19:05", Duration: "4h 15m"}},
	{"bangkok", BestFlightInfo{Airline: "Thai Airways", FlightNumber: "TG316", Departure: "11:35", Arrival: "17:20", Duration: "4h 15m"}},
	{"thailand", BestFlightInfo{Airline: "Thai Airways", FlightNumber: "TG316", Departure: "11:35", Arrival: "17:20", Duration: "4h 15m"}},
	{"goa", BestFlightInfo{Airline: "IndiGo", FlightNumber: "6E5312", Departure: "07:15", Arrival: "09:50", Duration: "2h 35m"}},
}

var defaultBestFlight = BestFlightInfo{
	Airline: "Air India", FlightNumber: "AI101", Departure: "06:00", Arrival: "10:30", Duration: "4h 30m",
}

// BestFlight resolves the representative flight for a destination.
func BestFlight(destination string) BestFlightInfo {
	d := strings.ToLower(destination)
	for _, e := range bestFlights {
		if strings.Contains(d, e.key) {
			return e.flight
		}
	}
	return defaultBestFlight
}
