package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailModal shows the selected product. It renders straight from the
// store's state snapshot, so it always reflects the current selection.
type DetailModal struct {
	model    *BrowserModel
	viewport viewport.Model
}

// NewDetailModal creates the detail overlay for the currently tapped item.
func NewDetailModal(m *BrowserModel) *DetailModal {
	return &DetailModal{model: m, viewport: viewport.New(0, 0)}
}

func (d *DetailModal) ID() string { return "details" }

func (d *DetailModal) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	return handleModalScroll(&d.viewport, msg), nil
}

func (d *DetailModal) View(width, height int) string {
	item := d.model.st.Selected
	if item == nil {
		return renderModalFrame(&d.viewport, "Product", dimStyle.Render("Nothing selected"), width, height)
	}

	stock := lipgloss.NewStyle().Foreground(ColorGreen).Render("In stock")
	if !item.InStock {
		stock = lipgloss.NewStyle().Foreground(ColorRed).Render("Out of stock")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(item.Name))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Category:     %s\n", item.Category))
	b.WriteString(fmt.Sprintf("Price:        $%.2f\n", item.Price))
	b.WriteString(fmt.Sprintf("Availability: %s\n", stock))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("ID: %s", item.ID)))

	return renderModalFrame(&d.viewport, "Product", b.String(), width, height)
}
