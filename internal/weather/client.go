package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tripsaathi/tripsaathi/internal/fetch"
)

// ErrNotConfigured means the OpenWeatherMap API key is absent.
var ErrNotConfigured = errors.New("weather provider not configured")

// ErrLocationNotFound means geocoding returned zero results for the city.
var ErrLocationNotFound = errors.New("location not found")

const (
	owmGeoDefault      = "https://api.openweathermap.org/geo/1.0/direct"
	owmForecastDefault = "https://api.openweathermap.org/data/2.5/forecast"
	owmCurrentDefault  = "https://api.openweathermap.org/data/2.5/weather"
)

// Client fetches geocoding, forecast, and current conditions from OpenWeatherMap.
type Client struct {
	apiKey      string
	geoURL      string
	forecastURL string
	currentURL  string
	client      *http.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:      apiKey,
		geoURL:      owmGeoDefault,
		forecastURL: owmForecastDefault,
		currentURL:  owmCurrentDefault,
		client:      fetch.NewClient(),
	}
}

// NewClientWithURLs constructs a Client pointing at custom endpoints (for tests).
func NewClientWithURLs(geoURL, forecastURL, currentURL, apiKey string) *Client {
	return &Client{
		apiKey:      apiKey,
		geoURL:      geoURL,
		forecastURL: forecastURL,
		currentURL:  currentURL,
		client:      fetch.NewClient(),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type owmGeoEntry struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Geocode resolves a city name to coordinates.
// Returns ErrLocationNotFound when the provider has no match.
func (c *Client) Geocode(ctx context.Context, city string) (*Place, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := c.geoURL + "?q=" + url.QueryEscape(city) + "&limit=1&appid=" + c.apiKey

	var raw []owmGeoEntry
	if err := fetch.GetJSON(ctx, c.client, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("geocoding %s: %w", city, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("geocoding %s: %w", city, ErrLocationNotFound)
	}

	return &Place{
		Name:    raw[0].Name,
		Country: raw[0].Country,
		Lat:     raw[0].Lat,
		Lon:     raw[0].Lon,
	}, nil
}

type owmWeatherField struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmForecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []owmWeatherField `json:"weather"`
	} `json:"list"`
}

// Forecast retrieves the raw 3-hourly forecast list for the given coordinates,
// in provider order. Each entry's Date is the slot's full timestamp prefix.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]ForecastEntry, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s", c.forecastURL, lat, lon, c.apiKey)

	var raw owmForecastResponse
	if err := fetch.GetJSON(ctx, c.client, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}

	entries := make([]ForecastEntry, 0, len(raw.List))
	for _, item := range raw.List {
		e := ForecastEntry{
			Date: item.DtTxt,
			Temp: item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			e.Condition = item.Weather[0].Main
			e.Icon = item.Weather[0].Icon
			e.Description = item.Weather[0].Description
		}
		entries = append(entries, e)
	}
	return entries, nil
}

type owmCurrentResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []owmWeatherField `json:"weather"`
}

// Current retrieves current conditions for the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*Conditions, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s", c.currentURL, lat, lon, c.apiKey)

	var raw owmCurrentResponse
	if err := fetch.GetJSON(ctx, c.client, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("fetching current conditions: %w", err)
	}

	cond := &Conditions{Temp: raw.Main.Temp}
	if len(raw.Weather) > 0 {
		cond.Condition = raw.Weather[0].Main
		cond.Icon = raw.Weather[0].Icon
		cond.Description = raw.Weather[0].Description
	}
	return cond, nil
}
