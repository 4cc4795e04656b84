// Package fetch provides the catalog fetch capability injected into the
// store. Implementations are interchangeable: a static in-memory source for
// demos and tests, and an HTTP client for the vitrined catalog service.
package fetch

import (
	"context"
	"errors"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

// Fetcher is the single asynchronous capability the store depends on.
type Fetcher interface {
	FetchItems(ctx context.Context) ([]catalog.Item, error)
}

// AsFetchError normalizes an arbitrary fetch failure into the closed
// taxonomy carried inside the screen state.
func AsFetchError(err error) *catalog.FetchError {
	var fe *catalog.FetchError
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return catalog.NetworkError("request timed out")
	}
	return catalog.UnknownError()
}
