package images_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripsaathi/tripsaathi/internal/images"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolve_LiveSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Goa travel landmark", r.URL.Query().Get("query"))
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{{
				"urls": map[string]any{"regular": "https://img.example/goa.jpg", "thumb": "https://img.example/goa-t.jpg"},
				"user": map[string]any{"name": "A Photographer", "links": map[string]any{"html": "https://unsplash.com/@a"}},
			}},
		})
	}))
	defer srv.Close()

	svc := images.NewService(images.NewPhotoClientWithURL(srv.URL, "test-key"), discardLogger())
	photo := svc.Resolve(context.Background(), "Goa")

	require.NotNil(t, photo)
	assert.Equal(t, "https://img.example/goa.jpg", photo.URL)
	assert.Equal(t, "A Photographer", photo.Credit)
}

func TestResolve_ZeroResults_FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	svc := images.NewService(images.NewPhotoClientWithURL(srv.URL, "test-key"), discardLogger())
	photo := svc.Resolve(context.Background(), "Bali")

	require.NotNil(t, photo)
	assert.Contains(t, photo.URL, "1537996194471", "Bali has a curated fallback")
	assert.Equal(t, "Unsplash", photo.Credit)
}

func TestResolve_ProviderError_FallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := images.NewService(images.NewPhotoClientWithURL(srv.URL, "test-key"), discardLogger())
	photo := svc.Resolve(context.Background(), "Maldives")

	require.NotNil(t, photo)
	assert.Contains(t, photo.URL, "1514282401047")
}

func TestResolve_MissingKey_FallsBack(t *testing.T) {
	svc := images.NewService(images.NewPhotoClientWithURL("http://unused", ""), discardLogger())
	photo := svc.Resolve(context.Background(), "Dubai")

	require.NotNil(t, photo)
	assert.Contains(t, photo.URL, "1512453979798")
}

func TestResolve_UnknownDestination_DefaultFallback(t *testing.T) {
	svc := images.NewService(images.NewPhotoClientWithURL("http://unused", ""), discardLogger())
	photo := svc.Resolve(context.Background(), "Atlantis")

	require.NotNil(t, photo)
	assert.Contains(t, photo.URL, "1512453979798", "unknown destinations get the default image")
}
