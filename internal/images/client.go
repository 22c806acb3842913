// Package images resolves a destination to a representative photo, with a
// static fallback so the endpoint never fails.
package images

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tripsaathi/tripsaathi/internal/fetch"
)

var errNotConfigured = errors.New("photo search provider not configured")

var errNoResults = errors.New("no photos found")

const unsplashDefaultURL = "https://api.unsplash.com/search/photos"

// Photo is a single resolved destination image.
type Photo struct {
	URL        string `json:"url"`
	Thumb      string `json:"thumb"`
	Credit     string `json:"credit"`
	CreditLink string `json:"credit_link"`
}

// PhotoClient searches Unsplash for destination photos.
type PhotoClient struct {
	accessKey string
	baseURL   string
	client    *http.Client
}

// NewPhotoClient constructs a PhotoClient with the given access key.
func NewPhotoClient(accessKey string) *PhotoClient {
	return &PhotoClient{accessKey: accessKey, baseURL: unsplashDefaultURL, client: fetch.NewClient()}
}

// NewPhotoClientWithURL constructs a PhotoClient pointing at a custom base URL (for tests).
func NewPhotoClientWithURL(baseURL, accessKey string) *PhotoClient {
	return &PhotoClient{accessKey: accessKey, baseURL: baseURL, client: fetch.NewClient()}
}

type searchResponse struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
			Thumb   string `json:"thumb"`
		} `json:"urls"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

// Search returns the top photo for a query, or errNoResults.
func (c *PhotoClient) Search(ctx context.Context, query string) (*Photo, error) {
	if c.accessKey == "" {
		return nil, errNotConfigured
	}

	endpoint := c.baseURL + "?query=" + url.QueryEscape(query) + "&per_page=1&orientation=landscape"
	headers := map[string]string{"Authorization": "Client-ID " + c.accessKey}

	var raw searchResponse
	if err := fetch.GetJSONWithHeaders(ctx, c.client, endpoint, headers, &raw); err != nil {
		return nil, fmt.Errorf("photo search for %q: %w", query, err)
	}
	if len(raw.Results) == 0 {
		return nil, fmt.Errorf("photo search for %q: %w", query, errNoResults)
	}

	top := raw.Results[0]
	return &Photo{
		URL:        top.URLs.Regular,
		Thumb:      top.URLs.Thumb,
		Credit:     top.User.Name,
		CreditLink: top.User.Links.HTML,
	}, nil
}
