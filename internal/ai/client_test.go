package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsaathi/tripsaathi/internal/ai"
)

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req, "contents")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": "hello from the model"}},
				},
			}},
		})
	}))
	defer srv.Close()

	c := ai.NewClientWithURL(srv.URL, "test-key")
	out, err := c.Generate(context.Background(), "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", out)
}

func TestClient_Generate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := ai.NewClientWithURL(srv.URL, "test-key")
	_, err := c.Generate(context.Background(), "say hello")
	require.Error(t, err)
}

func TestClient_Generate_MissingKey(t *testing.T) {
	c := ai.NewClientWithURL("http://unused", "")
	_, err := c.Generate(context.Background(), "say hello")
	require.ErrorIs(t, err, ai.ErrNotConfigured)
}
