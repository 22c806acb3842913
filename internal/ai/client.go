// Package ai delegates structured extraction and packing-list generation to a
// generative text model behind a fixed-schema JSON contract.
package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/tripsaathi/tripsaathi/internal/fetch"
)

// ErrNotConfigured means the generative model API key is absent.
var ErrNotConfigured = errors.New("generative model provider not configured")

// ErrMalformedOutput means the model's response was not valid JSON for the
// requested schema after fence-stripping. Kept distinct from transport
// failures so it can be logged and counted separately.
var ErrMalformedOutput = errors.New("model returned malformed output")

const (
	geminiDefaultURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel     = "gemini-1.5-flash"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClient constructs a Client with the given API key and the default model.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, model: defaultModel, baseURL: geminiDefaultURL, client: fetch.NewClient()}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, model: defaultModel, baseURL: baseURL, client: fetch.NewClient()}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt to the model and returns its raw text response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: 0.4},
	}

	var raw generateResponse
	if err := fetch.PostJSON(ctx, c.client, endpoint, req, &raw); err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("generating content: empty model response")
	}
	return raw.Candidates[0].Content.Parts[0].Text, nil
}
