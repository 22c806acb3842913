package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// TripQuery is the structured extraction of a free-text travel query.
type TripQuery struct {
	Destination        string `json:"destination"`
	Country            string `json:"country"`
	Duration           int    `json:"duration"`
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	NumAdults          int    `json:"num_adults"`
	NumKids            int    `json:"num_kids"`
	KidAges            []int  `json:"kid_ages"`
	ParsedSuccessfully bool   `json:"parsed_successfully"`
}

// textGenerator is the interface satisfied by Client.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Parser extracts structured trip queries from free text via the model.
type Parser struct {
	gen textGenerator
	now func() time.Time
}

// NewParser constructs a Parser backed by the given generator.
func NewParser(gen textGenerator) *Parser {
	return &Parser{gen: gen, now: time.Now}
}

// NewParserWithClock constructs a Parser with an injectable clock (for tests).
func NewParserWithClock(gen textGenerator, now func() time.Time) *Parser {
	return &Parser{gen: gen, now: now}
}

// Parse asks the model to extract destination, dates, and party composition
// from the query. Model output is fence-stripped, parsed as JSON, and lightly
// validated: a parse failure or empty destination is ErrMalformedOutput.
func (p *Parser) Parse(ctx context.Context, query string) (*TripQuery, error) {
	raw, err := p.gen.Generate(ctx, p.buildPrompt(query))
	if err != nil {
		return nil, err
	}

	var tq TripQuery
	if err := json.Unmarshal([]byte(StripFences(raw)), &tq); err != nil {
		return nil, fmt.Errorf("parsing trip query: %w: %v", ErrMalformedOutput, err)
	}
	if tq.Destination == "" || tq.Duration < 0 || tq.NumAdults < 0 || tq.NumKids < 0 {
		return nil, fmt.Errorf("parsing trip query: %w: required fields missing", ErrMalformedOutput)
	}

	tq.ParsedSuccessfully = true
	return &tq, nil
}

func (p *Parser) buildPrompt(query string) string {
	today := p.now()
	exampleStart := today.AddDate(0, 0, 7).Format("2006-01-02")
	exampleEnd := today.AddDate(0, 0, 12).Format("2006-01-02")

	return fmt.Sprintf(`You are a travel query parser for an Indian family trip planner.
Today's date is %s.

Extract the trip details from the user's query and reply with ONLY a JSON
object in exactly this schema, no prose and no markdown:

{
  "destination": "city or region name",
  "country": "country name",
  "duration": <number of days>,
  "start_date": "YYYY-MM-DD",
  "end_date": "YYYY-MM-DD",
  "num_adults": <number>,
  "num_kids": <number>,
  "kid_ages": [<ages in years>]
}

Rules:
- All dates are ISO 8601 date-only strings.
- When the query gives no dates, default start_date to %s and end_date to %s.
- When party size is not mentioned, assume 2 adults and 0 kids.
- duration is end_date minus start_date in days.

Example query: "5 days in Bali with my wife and 2 kids aged 4 and 9"
Example answer:
{"destination": "Bali", "country": "Indonesia", "duration": 5, "start_date": "%s", "end_date": "%s", "num_adults": 2, "num_kids": 2, "kid_ages": [4, 9]}

User query: %q`,
		today.Format("2006-01-02"), exampleStart, exampleEnd, exampleStart, exampleEnd, query)
}
