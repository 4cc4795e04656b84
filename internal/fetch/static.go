package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

// Static serves a fixed catalog from memory with optional simulated latency
// and failure injection. It honors context cancellation during the delay.
type Static struct {
	Latency   time.Duration
	FailEvery int // every Nth call fails with a network error; 0 = never

	mu    sync.Mutex
	items []catalog.Item
	calls int
}

// NewStatic returns a static fetcher over its own copy of items.
func NewStatic(items []catalog.Item) *Static {
	return &Static{items: append([]catalog.Item(nil), items...)}
}

func (s *Static) FetchItems(ctx context.Context) ([]catalog.Item, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	items := append([]catalog.Item(nil), s.items...)
	latency := s.Latency
	failEvery := s.FailEvery
	s.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if failEvery > 0 && call%failEvery == 0 {
		return nil, catalog.NetworkError("simulated network failure")
	}
	return items, nil
}
