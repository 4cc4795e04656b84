package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/vitrine/internal/browse"
)

// Update handles messages.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case StateMsg:
		m.st = browse.State(msg)
		m.clampCursors()
		// Re-arm the bridge so the next snapshot arrives too.
		return m, m.bridge.wait()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modal on the stack gets the key first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
			if modal.ID() == "details" {
				m.store.Dispatch(browse.CloseDetails())
			}
		}
		return m, cmd
	}

	// Inline search input swallows keys while active.
	if m.searchActive {
		return m.handleSearchInput(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()

	case "?":
		m.PushModal(NewHelpModal(m))
		return m, nil

	case "/":
		m.searchActive = true
		m.searchInput.SetValue(m.st.SearchText)
		m.searchInput.Focus()
		return m, nil

	case "tab", "shift+tab":
		if m.activeSection == SectionList {
			m.activeSection = SectionSidebar
		} else {
			m.activeSection = SectionList
		}
		return m, nil

	case "up", "k":
		m.moveSelection(-1)
		return m, nil

	case "down", "j":
		m.moveSelection(1)
		return m, nil

	case "enter":
		return m.handleEnter()

	case "esc", "escape":
		// Clear whatever is narrowing the list.
		if m.st.SearchText != "" || m.st.SelectedCategory != "" {
			m.searchInput.SetValue("")
			m.sidebarCursor = 0
			m.store.Dispatch(browse.ClearFilters())
		}
		return m, nil

	case "r":
		if m.st.Err != nil {
			m.store.Dispatch(browse.Retry())
		} else {
			m.store.Dispatch(browse.Refresh())
		}
		return m, nil

	case "x":
		m.searchInput.SetValue("")
		m.sidebarCursor = 0
		m.store.Dispatch(browse.ClearFilters())
		return m, nil

	case "e":
		m.store.Dispatch(browse.ClearError())
		return m, nil
	}

	return m, nil
}

func (m *BrowserModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.TopModal() != nil || m.searchActive {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.moveSelection(-1)
		case tea.MouseButtonWheelDown:
			m.moveSelection(1)
		}
	}
	return m, nil
}

func (m *BrowserModel) moveSelection(delta int) {
	switch m.activeSection {
	case SectionSidebar:
		entries := m.sidebarEntries()
		next := m.sidebarCursor + delta
		if next >= 0 && next < len(entries) {
			m.sidebarCursor = next
		}
	case SectionList:
		items := m.st.FilteredItems()
		next := m.listCursor + delta
		if next >= 0 && next < len(items) {
			m.listCursor = next
		}
	}
}

func (m *BrowserModel) handleEnter() (tea.Model, tea.Cmd) {
	switch m.activeSection {
	case SectionSidebar:
		entries := m.sidebarEntries()
		if m.sidebarCursor >= len(entries) {
			return m, nil
		}
		category := entries[m.sidebarCursor]
		if category == "All" {
			category = ""
		}
		m.listCursor = 0
		m.store.Dispatch(browse.CategorySelected(category))

	case SectionList:
		items := m.st.FilteredItems()
		if m.listCursor >= len(items) {
			return m, nil
		}
		m.store.Dispatch(browse.ItemTapped(items[m.listCursor]))
		m.PushModal(NewDetailModal(m))
	}
	return m, nil
}

func (m *BrowserModel) quit() (tea.Model, tea.Cmd) {
	m.store.Dispatch(browse.Disappeared())
	if m.unsub != nil {
		m.unsub()
	}
	return m, tea.Quit
}
