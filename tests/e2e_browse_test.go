// Blackbox test of the full dispatch loop: catalog API -> HTTP fetcher ->
// store -> reducer -> subscriber, exercised the way the binaries wire it.
package tests

import (
	"testing"
	"time"

	"github.com/tinytelemetry/vitrine/internal/browse"
	"github.com/tinytelemetry/vitrine/internal/catalog"
	"github.com/tinytelemetry/vitrine/internal/fetch"
	"github.com/tinytelemetry/vitrine/internal/httpserver"
	"github.com/tinytelemetry/vitrine/internal/store"
)

type demoSource struct{}

func (demoSource) Items() []catalog.Item { return catalog.Demo() }

func startCatalogAPI(t *testing.T) *httpserver.Server {
	t.Helper()

	srv := httpserver.NewServer("127.0.0.1:0", demoSource{})
	if err := srv.Start(); err != nil {
		t.Fatalf("starting catalog API: %v", err)
	}
	t.Cleanup(func() { _ = srv.Stop() })
	return srv
}

func waitFor(t *testing.T, states chan browse.State, what string, pred func(browse.State) bool) browse.State {
	t.Helper()
	deadline := time.After(10 * time.Second)
	for {
		select {
		case st := <-states:
			if pred(st) {
				return st
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", what)
		}
	}
}

func TestBrowseOverHTTP(t *testing.T) {
	srv := startCatalogAPI(t)

	client := fetch.NewClient(srv.Addr(), 5*time.Second)
	s := store.New(client)
	defer s.Close()

	states := make(chan browse.State, 64)
	defer s.Subscribe(func(st browse.State) { states <- st })()

	s.Dispatch(browse.StartLoad())

	loaded := waitFor(t, states, "catalog load", func(st browse.State) bool {
		return !st.Loading && st.Err == nil && len(st.Items) > 0
	})
	if len(loaded.Items) != 8 {
		t.Fatalf("items = %d, want 8", len(loaded.Items))
	}

	s.Dispatch(browse.SearchChanged("iPhone"))
	searched := waitFor(t, states, "search narrow", func(st browse.State) bool {
		return st.SearchText == "iPhone"
	})
	if got := len(searched.FilteredItems()); got != 2 {
		t.Fatalf("filtered = %d, want 2 iPhone items", got)
	}

	s.Dispatch(browse.CategorySelected("Smartphones"))
	s.Dispatch(browse.SearchChanged("Pro"))
	narrowed := waitFor(t, states, "combined filters", func(st browse.State) bool {
		return st.SearchText == "Pro" && st.SelectedCategory == "Smartphones"
	})
	filtered := narrowed.FilteredItems()
	if len(filtered) != 1 || filtered[0].Name != "iPhone 15 Pro" {
		t.Fatalf("filtered = %v, want only iPhone 15 Pro", filtered)
	}

	s.Dispatch(browse.ClearFilters())
	cleared := waitFor(t, states, "clear filters", func(st browse.State) bool {
		return st.SearchText == "" && st.SelectedCategory == ""
	})
	if got := len(cleared.FilteredItems()); got != 8 {
		t.Fatalf("filtered after clear = %d, want 8", got)
	}
}

func TestBrowseOverHTTP_FailureAndRetry(t *testing.T) {
	srv := startCatalogAPI(t)
	addr := srv.Addr()

	client := fetch.NewClient(addr, 2*time.Second)
	s := store.New(client)
	defer s.Close()

	states := make(chan browse.State, 64)
	defer s.Subscribe(func(st browse.State) { states <- st })()

	s.Dispatch(browse.StartLoad())
	waitFor(t, states, "initial load", func(st browse.State) bool {
		return !st.Loading && len(st.Items) == 8
	})

	// Take the service down; the refresh must land a network error while the
	// previously loaded items stay on screen.
	if err := srv.Stop(); err != nil {
		t.Fatalf("stopping catalog API: %v", err)
	}

	s.Dispatch(browse.Refresh())
	failed := waitFor(t, states, "refresh failure", func(st browse.State) bool {
		return st.Err != nil
	})
	if failed.Err.Kind != catalog.ErrorNetwork {
		t.Fatalf("err kind = %s, want network", failed.Err.Kind)
	}
	if len(failed.Items) != 8 {
		t.Fatalf("items = %d after failure, want prior 8 kept", len(failed.Items))
	}

	// Retry clears the error before its fetch resolves.
	s.Dispatch(browse.Retry())
	retrying := waitFor(t, states, "retry state", func(st browse.State) bool {
		return st.Loading
	})
	if retrying.Err != nil {
		t.Fatalf("err = %v during retry, want nil", retrying.Err)
	}
}
