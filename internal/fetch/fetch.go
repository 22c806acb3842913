// Package fetch holds the small HTTP plumbing shared by every provider client:
// a timeout-bounded client and GET/POST helpers that decode JSON and retry a
// transient failure once.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const clientTimeout = 10 * time.Second

// NewClient returns an http.Client with a 10-second timeout.
func NewClient() *http.Client {
	return &http.Client{Timeout: clientTimeout}
}

// StatusError is returned when a provider responds with a non-2xx status.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s returned status %d", e.URL, e.Status)
}

// GetJSON performs a GET against rawURL and decodes the JSON body into dst.
// A transport error or 5xx response is retried once before giving up.
func GetJSON(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	return doJSON(ctx, client, http.MethodGet, rawURL, nil, nil, dst)
}

// PostJSON marshals body, POSTs it to rawURL, and decodes the response into dst.
// Same single-retry policy as GetJSON.
func PostJSON(ctx context.Context, client *http.Client, rawURL string, body any, dst any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body for %s: %w", rawURL, err)
	}
	headers := map[string]string{"Content-Type": "application/json"}
	return doJSON(ctx, client, http.MethodPost, rawURL, b, headers, dst)
}

// GetJSONWithHeaders is GetJSON with extra request headers (provider auth).
func GetJSONWithHeaders(ctx context.Context, client *http.Client, rawURL string, headers map[string]string, dst any) error {
	return doJSON(ctx, client, http.MethodGet, rawURL, nil, headers, dst)
}

func doJSON(ctx context.Context, client *http.Client, method, rawURL string, body []byte, headers map[string]string, dst any) error {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		retryable, err := doOnce(ctx, client, method, rawURL, body, headers, dst)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || ctx.Err() != nil {
			return err
		}
	}
	return lastErr
}

// doOnce performs a single request. The bool reports whether the failure is
// worth retrying (transport error or 5xx).
func doOnce(ctx context.Context, client *http.Client, method, rawURL string, body []byte, headers map[string]string, dst any) (bool, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return false, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return true, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode >= 500, &StatusError{Status: resp.StatusCode, URL: rawURL}
	}

	if dst == nil {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return false, fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}
	return false, nil
}
