package weather

// Conditions describes weather at a single point in time.
type Conditions struct {
	Temp        float64 `json:"temp"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

// ForecastEntry is one daily forecast slot.
type ForecastEntry struct {
	Date        string  `json:"date"`
	Temp        float64 `json:"temp"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

// Place is a geocoded location.
type Place struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Report is the full weather answer for a city: current conditions, up to
// seven daily forecast entries, a temperature trend, and a rain flag.
type Report struct {
	Location string          `json:"location"`
	Current  Conditions      `json:"current"`
	Forecast []ForecastEntry `json:"forecast"`
	Trend    string          `json:"trend"`
	HasRain  bool            `json:"has_rain"`
}
