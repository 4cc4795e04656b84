package browse

// Reduce maps a state and an action to the next state. Pure and total:
// no I/O, no mutation of the input, every (state, action) pair is defined.
// Actions it does not handle pass the state through unchanged.
func Reduce(s State, a Action) State {
	next := s

	switch a.Kind {
	case ActionStartLoad, ActionRefresh, ActionRetry:
		next.Loading = true
		next.Err = nil

	case ActionItemsLoaded:
		next.Items = a.Items
		next.Loading = false
		next.Err = nil

	case ActionLoadFailed:
		next.Loading = false
		next.Err = a.Err

	case ActionSearchChanged:
		next.SearchText = a.Text

	case ActionCategorySelected:
		next.SelectedCategory = a.Category

	case ActionClearFilters:
		// Only the two filter fields; selection and loading stay intact.
		next.SearchText = ""
		next.SelectedCategory = ""

	case ActionItemTapped:
		next.Selected = a.Item

	case ActionCloseDetails:
		next.Selected = nil

	case ActionClearError:
		next.Err = nil

	case ActionAppeared, ActionDisappeared:
		// Lifecycle only; no state change.
	}

	return next
}
