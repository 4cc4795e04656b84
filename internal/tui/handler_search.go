package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/vitrine/internal/browse"
)

// handleSearchInput routes keys to the inline search field. Every edit
// dispatches search-changed so the list narrows as the user types.
func (m *BrowserModel) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()

	case "escape", "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.store.Dispatch(browse.SearchChanged(""))
		return m, nil

	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		m.activeSection = SectionList
		return m, nil

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.listCursor = 0
		m.store.Dispatch(browse.SearchChanged(m.searchInput.Value()))
		return m, cmd
	}
}
