package images

import (
	"context"
	"log/slog"
)

// photoSearcher is the interface satisfied by PhotoClient.
type photoSearcher interface {
	Search(ctx context.Context, query string) (*Photo, error)
}

// Service resolves destination photos, degrading to the static table on any
// failure. It never returns an error.
type Service struct {
	photos photoSearcher
	log    *slog.Logger
}

// NewService constructs a Service backed by the given photo client.
func NewService(photos photoSearcher, log *slog.Logger) *Service {
	return &Service{photos: photos, log: log}
}

// Resolve searches for "<destination> travel landmark" and falls back to the
// curated table on a missing key, zero results, or any provider error.
func (s *Service) Resolve(ctx context.Context, destination string) *Photo {
	photo, err := s.photos.Search(ctx, destination+" travel landmark")
	if err != nil {
		s.log.Warn("photo search failed, using fallback image", "destination", destination, "err", err)
		return fallbackPhoto(destination)
	}
	return photo
}
