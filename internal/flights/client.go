package flights

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tripsaathi/tripsaathi/internal/fetch"
)

// ErrNotConfigured means the flight-status API key is absent.
var ErrNotConfigured = errors.New("flight status provider not configured")

// ErrFlightNotFound means the provider returned zero matching flights.
var ErrFlightNotFound = errors.New("flight not found")

const statusDefaultURL = "https://api.aviationstack.com/v1/flights"

// Flight is the normalized flight-status record.
type Flight struct {
	FlightNumber string     `json:"flight_number"`
	Airline      string     `json:"airline"`
	Status       string     `json:"status"`
	Date         string     `json:"date"`
	Departure    FlightStop `json:"departure"`
	Arrival      FlightStop `json:"arrival"`
}

// FlightStop is one endpoint of a flight.
type FlightStop struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
}

// StatusClient looks up live flight status by IATA flight number.
type StatusClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewStatusClient constructs a StatusClient with the given API key.
func NewStatusClient(apiKey string) *StatusClient {
	return &StatusClient{apiKey: apiKey, baseURL: statusDefaultURL, client: fetch.NewClient()}
}

// NewStatusClientWithURL constructs a StatusClient pointing at a custom base URL (for tests).
func NewStatusClientWithURL(baseURL, apiKey string) *StatusClient {
	return &StatusClient{apiKey: apiKey, baseURL: baseURL, client: fetch.NewClient()}
}

type statusEndpoint struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
}

type statusResponse struct {
	Data []struct {
		FlightDate   string         `json:"flight_date"`
		FlightStatus string         `json:"flight_status"`
		Departure    statusEndpoint `json:"departure"`
		Arrival      statusEndpoint `json:"arrival"`
		Airline      struct {
			Name string `json:"name"`
		} `json:"airline"`
		Flight struct {
			IATA string `json:"iata"`
		} `json:"flight"`
	} `json:"data"`
}

// Lookup queries the provider by IATA flight number and remaps the first
// result into the normalized shape. Returns ErrFlightNotFound on zero results.
func (c *StatusClient) Lookup(ctx context.Context, flightIATA string) (*Flight, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := c.baseURL + "?access_key=" + c.apiKey + "&flight_iata=" + url.QueryEscape(flightIATA)

	var raw statusResponse
	if err := fetch.GetJSON(ctx, c.client, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("flight status lookup for %s: %w", flightIATA, err)
	}
	if len(raw.Data) == 0 {
		return nil, fmt.Errorf("flight status lookup for %s: %w", flightIATA, ErrFlightNotFound)
	}

	d := raw.Data[0]
	return &Flight{
		FlightNumber: d.Flight.IATA,
		Airline:      d.Airline.Name,
		Status:       d.FlightStatus,
		Date:         d.FlightDate,
		Departure:    FlightStop(d.Departure),
		Arrival:      FlightStop(d.Arrival),
	}, nil
}
