package browse

import (
	"testing"

	"github.com/tinytelemetry/vitrine/internal/catalog"
)

func TestFilteredItems_CategoryAndSearchCombine(t *testing.T) {
	t.Parallel()

	s := State{
		Items:            catalog.Demo(),
		SearchText:       "Pro",
		SelectedCategory: "Smartphones",
	}

	got := s.FilteredItems()
	if len(got) != 1 {
		t.Fatalf("filtered = %d items, want 1", len(got))
	}
	if got[0].Name != "iPhone 15 Pro" {
		t.Fatalf("filtered[0] = %q, want iPhone 15 Pro", got[0].Name)
	}
}

func TestFilteredItems_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := State{Items: catalog.Demo(), SearchText: "macbook"}
	got := s.FilteredItems()
	if len(got) != 1 || got[0].Name != "MacBook Pro 14" {
		t.Fatalf("filtered = %v, want just MacBook Pro 14", got)
	}
}

func TestFilteredItems_NoFiltersReturnsAll(t *testing.T) {
	t.Parallel()

	s := State{Items: catalog.Demo()}
	if got := len(s.FilteredItems()); got != 8 {
		t.Fatalf("filtered = %d, want all 8", got)
	}
}

func TestCategories_DedupedAndSorted(t *testing.T) {
	t.Parallel()

	s := State{Items: catalog.Demo()}
	got := s.Categories()

	want := []string{"Audio", "Laptops", "Smartphones", "Tablets"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEmptyMessage_Priority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		state State
		want  string
	}{
		{
			name:  "loading wins over error",
			state: State{Loading: true, Err: catalog.NetworkError("down")},
			want:  "Loading products...",
		},
		{
			name:  "error wins over search",
			state: State{Err: catalog.DecodingError(), SearchText: "x"},
			want:  "The catalog could not be read",
		},
		{
			name:  "search wins over category",
			state: State{SearchText: "zzz", SelectedCategory: "Audio"},
			want:  `No products match "zzz"`,
		},
		{
			name:  "category message",
			state: State{SelectedCategory: "Audio"},
			want:  "No products in Audio",
		},
		{
			name:  "generic fallback",
			state: State{},
			want:  "No products yet",
		},
	}

	for _, tc := range cases {
		if got := tc.state.EmptyMessage(); got != tc.want {
			t.Fatalf("%s: message = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsEmpty_FollowsFilteredItems(t *testing.T) {
	t.Parallel()

	s := State{Items: catalog.Demo()}
	if s.IsEmpty() {
		t.Fatalf("IsEmpty = true with a full catalog")
	}

	s.SearchText = "no such product"
	if !s.IsEmpty() {
		t.Fatalf("IsEmpty = false with an unmatched search")
	}
}

func TestStateEqual(t *testing.T) {
	t.Parallel()

	a := State{Items: catalog.Demo(), SearchText: "pro"}
	b := State{Items: catalog.Demo(), SearchText: "pro"}
	if !a.Equal(b) {
		t.Fatalf("identical states not equal")
	}

	b.SearchText = "air"
	if a.Equal(b) {
		t.Fatalf("states with different search compare equal")
	}

	c := State{Err: catalog.NetworkError("x")}
	d := State{Err: catalog.NetworkError("x")}
	if !c.Equal(d) {
		t.Fatalf("equal errors held by different pointers compare unequal")
	}
}
