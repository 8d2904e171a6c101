package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/moviemagic/internal/omdb"
	"github.com/vmunix/moviemagic/internal/review"
)

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks . MovieSource

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// MovieSource looks up movies in the upstream movie database.
type MovieSource interface {
	Search(ctx context.Context, query string) ([]omdb.Summary, error)
	GetMovie(ctx context.Context, imdbID string) (omdb.Document, error)
}

// ServerDeps contains all dependencies for the API server.
type ServerDeps struct {
	Movies  MovieSource
	Reviews *review.Store
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Movies == nil {
		return fmt.Errorf("%w: movie source", ErrMissingDependency)
	}
	if d.Reviews == nil {
		return fmt.Errorf("%w: review store", ErrMissingDependency)
	}
	return nil
}
