// Package browse holds the state/action/reducer contract for the product
// browser screen. State is an immutable snapshot; Reduce is the only thing
// that produces new ones. Nothing in this package performs I/O.
package browse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

// State is everything the screen needs to render. Values are treated as
// immutable: the reducer returns fresh copies and callers must not mutate
// Items in place.
type State struct {
	Items            []catalog.Item
	SearchText       string
	SelectedCategory string // empty = no category filter
	Loading          bool
	Err              *catalog.FetchError
	Selected         *catalog.Item // non-nil while the detail overlay is open
}

// Initial returns the state a fresh screen starts from.
func Initial() State {
	return State{}
}

// FilteredItems returns the items matching the selected category (when set)
// and a case-insensitive substring match on the search text (when non-empty).
// Recomputed on every call; never cached.
func (s State) FilteredItems() []catalog.Item {
	needle := strings.ToLower(s.SearchText)

	out := make([]catalog.Item, 0, len(s.Items))
	for _, it := range s.Items {
		if s.SelectedCategory != "" && it.Category != s.SelectedCategory {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(it.Name), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Categories returns the deduplicated, sorted category names across Items.
func (s State) Categories() []string {
	seen := make(map[string]struct{}, len(s.Items))
	for _, it := range s.Items {
		seen[it.Category] = struct{}{}
	}

	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// IsEmpty reports whether the filtered list has nothing to show.
func (s State) IsEmpty() bool {
	return len(s.FilteredItems()) == 0
}

// EmptyMessage returns the placeholder text for an empty list. Priority:
// loading, then error, then unmatched search, then empty category, then the
// generic message. The loading text deliberately wins over a stale error so
// retry never shows old error text under the spinner.
func (s State) EmptyMessage() string {
	switch {
	case s.Loading:
		return "Loading products..."
	case s.Err != nil:
		return s.Err.UserMessage()
	case s.SearchText != "":
		return fmt.Sprintf("No products match %q", s.SearchText)
	case s.SelectedCategory != "":
		return fmt.Sprintf("No products in %s", s.SelectedCategory)
	default:
		return "No products yet"
	}
}

// Equal compares two states structurally. Subscribers are only notified when
// this returns false for the old and new state.
func (s State) Equal(o State) bool {
	if s.SearchText != o.SearchText ||
		s.SelectedCategory != o.SelectedCategory ||
		s.Loading != o.Loading {
		return false
	}
	if !s.Err.Equal(o.Err) {
		return false
	}
	if (s.Selected == nil) != (o.Selected == nil) {
		return false
	}
	if s.Selected != nil && *s.Selected != *o.Selected {
		return false
	}
	if len(s.Items) != len(o.Items) {
		return false
	}
	for i := range s.Items {
		if s.Items[i] != o.Items[i] {
			return false
		}
	}
	return true
}
