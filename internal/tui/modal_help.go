package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal lists the key bindings.
type HelpModal struct {
	model    *BrowserModel
	viewport viewport.Model
}

func NewHelpModal(m *BrowserModel) *HelpModal {
	return &HelpModal{model: m, viewport: viewport.New(0, 0)}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	return handleModalScroll(&h.viewport, msg), nil
}

func (h *HelpModal) View(width, height int) string {
	k := h.model.keys

	groups := []struct {
		title string
		keys  []key.Binding
	}{
		{"Navigation", []key.Binding{k.NextSection, k.Up, k.Down, k.Enter}},
		{"Filtering", []key.Binding{k.Search, k.ClearFilters, k.Escape}},
		{"Catalog", []key.Binding{k.Refresh, k.ClearError}},
		{"General", []key.Binding{k.Help, k.Quit, k.ForceQuit}},
	}

	var b strings.Builder
	for _, g := range groups {
		b.WriteString(titleStyle.Render(g.title))
		b.WriteString("\n")
		for _, binding := range g.keys {
			help := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", help.Key, help.Desc))
		}
		b.WriteString("\n")
	}

	return renderModalFrame(&h.viewport, "Help", b.String(), width, height)
}
