package browse

import "github.com/tinytelemetry/vitrine/internal/catalog"

// ActionKind names one member of the closed action union.
type ActionKind string

const (
	ActionStartLoad        ActionKind = "start-load"
	ActionRefresh          ActionKind = "refresh"
	ActionRetry            ActionKind = "retry"
	ActionItemsLoaded      ActionKind = "items-loaded"
	ActionLoadFailed       ActionKind = "load-failed"
	ActionSearchChanged    ActionKind = "search-changed"
	ActionCategorySelected ActionKind = "category-selected"
	ActionClearFilters     ActionKind = "clear-filters"
	ActionItemTapped       ActionKind = "item-tapped"
	ActionCloseDetails     ActionKind = "close-details"
	ActionClearError       ActionKind = "clear-error"
	ActionAppeared         ActionKind = "appeared"
	ActionDisappeared      ActionKind = "disappeared"
)

// Action is a named, data-carrying description of an event or intent.
// Only the payload field matching Kind is set; actions carry no behavior.
type Action struct {
	Kind ActionKind

	Items    []catalog.Item      // items-loaded
	Err      *catalog.FetchError // load-failed
	Text     string              // search-changed
	Category string              // category-selected
	Item     *catalog.Item       // item-tapped
}

func StartLoad() Action { return Action{Kind: ActionStartLoad} }
func Refresh() Action   { return Action{Kind: ActionRefresh} }
func Retry() Action     { return Action{Kind: ActionRetry} }

func ItemsLoaded(items []catalog.Item) Action {
	return Action{Kind: ActionItemsLoaded, Items: items}
}

func LoadFailed(err *catalog.FetchError) Action {
	return Action{Kind: ActionLoadFailed, Err: err}
}

func SearchChanged(text string) Action {
	return Action{Kind: ActionSearchChanged, Text: text}
}

func CategorySelected(category string) Action {
	return Action{Kind: ActionCategorySelected, Category: category}
}

func ClearFilters() Action { return Action{Kind: ActionClearFilters} }

func ItemTapped(item catalog.Item) Action {
	return Action{Kind: ActionItemTapped, Item: &item}
}

func CloseDetails() Action { return Action{Kind: ActionCloseDetails} }
func ClearError() Action   { return Action{Kind: ActionClearError} }
func Appeared() Action     { return Action{Kind: ActionAppeared} }
func Disappeared() Action  { return Action{Kind: ActionDisappeared} }

// TriggersFetch reports whether the orchestrator should start an
// asynchronous fetch after reducing this action.
func (a Action) TriggersFetch() bool {
	switch a.Kind {
	case ActionStartLoad, ActionRefresh, ActionRetry:
		return true
	}
	return false
}
