package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 22

// View renders the browser screen.
func (m *BrowserModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing browser..."
	}

	// If a modal is on the stack, render it full-screen.
	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	header := m.renderHeader()
	searchBar := m.renderSearchBar()
	status := m.renderStatusLine()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status)
	if searchBar != "" {
		bodyHeight -= lipgloss.Height(searchBar)
	}
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	sidebar := m.renderSidebar(bodyHeight)
	content := m.renderContent(m.width-sidebarWidth, bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)

	parts := []string{header}
	if searchBar != "" {
		parts = append(parts, searchBar)
	}
	parts = append(parts, body, status)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the brand plus the current load/filter situation.
func (m *BrowserModel) renderHeader() string {
	brand := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorGreen).
		Bold(true).
		Render(" Vitrine ")

	var right string
	switch {
	case m.st.Loading:
		right = loadingStyle.Render("Loading...")
	case m.st.Err != nil:
		right = errorStyle.Render("Error — r: retry, e: dismiss")
	default:
		right = dimStyle.Render(fmt.Sprintf("%d products", len(m.st.Items)))
	}

	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return brand + strings.Repeat(" ", gap) + right
}

func (m *BrowserModel) renderSearchBar() string {
	if m.searchActive {
		return "Search: " + m.searchInput.View()
	}
	if m.st.SearchText != "" {
		return "Search: " + titleStyle.Render(m.st.SearchText) + dimStyle.Render("  (esc clears)")
	}
	return ""
}

func (m *BrowserModel) renderSidebar(height int) string {
	style := sectionStyle
	if m.activeSection == SectionSidebar {
		style = activeSectionStyle
	}

	entries := m.sidebarEntries()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Categories"))
	b.WriteString("\n")

	for i, entry := range entries {
		label := entry
		applied := (entry == "All" && m.st.SelectedCategory == "") ||
			entry == m.st.SelectedCategory
		if applied {
			label = "● " + label
		} else {
			label = "  " + label
		}

		if i == m.sidebarCursor && m.activeSection == SectionSidebar {
			b.WriteString(selectedRowStyle.Render(label))
		} else if applied {
			b.WriteString(titleStyle.Render(label))
		} else {
			b.WriteString(label)
		}
		b.WriteString("\n")
	}

	return style.Width(sidebarWidth - 2).Height(height - 2).Render(b.String())
}

func (m *BrowserModel) renderContent(width, height int) string {
	style := sectionStyle
	if m.activeSection == SectionList {
		style = activeSectionStyle
	}

	innerWidth := width - 4
	innerHeight := height - 2

	chartHeight := 0
	var chart string
	if innerHeight > 14 && len(m.st.Items) > 0 {
		chart = renderCategoryChart(m.st, innerWidth, 7)
		if chart != "" {
			chartHeight = lipgloss.Height(chart) + 1
		}
	}

	list := m.renderList(innerWidth, innerHeight-chartHeight)

	var inner string
	if chart != "" {
		inner = lipgloss.JoinVertical(lipgloss.Left, chart, "", list)
	} else {
		inner = list
	}

	return style.Width(width - 2).Height(height - 2).Render(inner)
}

func (m *BrowserModel) renderList(width, height int) string {
	items := m.st.FilteredItems()

	if len(items) == 0 {
		msg := m.st.EmptyMessage()
		style := dimStyle
		if m.st.Loading {
			style = loadingStyle
		} else if m.st.Err != nil {
			style = errorStyle
		}
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, style.Render(msg))
	}

	maxRows := height - 1
	if maxRows < 1 {
		maxRows = 1
	}

	// Keep the cursor visible when the list is taller than the panel.
	start := 0
	if m.listCursor >= maxRows {
		start = m.listCursor - maxRows + 1
	}
	end := min(len(items), start+maxRows)

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-30s %10s  %-13s %s", "Product", "Price", "Category", "Stock")))
	b.WriteString("\n")

	for i := start; i < end; i++ {
		it := items[i]

		dot := lipgloss.NewStyle().Foreground(ColorGreen).Render("●")
		if !it.InStock {
			dot = lipgloss.NewStyle().Foreground(ColorRed).Render("●")
		}

		row := fmt.Sprintf("%-30s $%9.2f  %-13s %s", truncate(it.Name, 30), it.Price, it.Category, dot)
		if i == m.listCursor && m.activeSection == SectionList {
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusLine renders the status/help line at the bottom of the screen.
func (m *BrowserModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	var statusText string
	narrow := m.width < 80

	switch {
	case m.searchActive:
		statusText = "Type to search • Enter: Apply • ESC: Cancel"
	case m.activeSection == SectionSidebar:
		if narrow {
			statusText = "↑↓ • Enter: Filter • Tab • q"
		} else {
			statusText = "↑↓: Navigate • Enter: Filter category • Tab: Products • ?: Help • q: Quit"
		}
	default:
		if narrow {
			statusText = "↑↓ • Enter • / • r • ? • q"
		} else {
			statusText = "↑↓: Navigate • Enter: Details • /: Search • r: Refresh • x: Clear filters • ?: Help • q: Quit"
		}
	}

	filtered := len(m.st.FilteredItems())
	counter := fmt.Sprintf(" %d/%d ", filtered, len(m.st.Items))

	gap := m.width - lipgloss.Width(statusText) - lipgloss.Width(counter) - 2
	if gap < 1 {
		gap = 1
	}
	line := " " + statusText + strings.Repeat(" ", gap) + counter
	return baseStyle.Width(m.width).Render(line)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
