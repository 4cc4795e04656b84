package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a full-screen overlay on the modal stack. Update returns true
// when the modal wants to close.
type Modal interface {
	ID() string
	Update(msg tea.KeyMsg) (pop bool, cmd tea.Cmd)
	View(width, height int) string
}

// renderModalFrame renders a titled scrollable modal with the given content.
func renderModalFrame(vp *viewport.Model, title, content string, width, height int) string {
	modalWidth := width - 8
	modalHeight := height - 6

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	vp.Width = contentWidth
	vp.Height = contentHeight
	vp.SetContent(content)

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	statusBar := renderModalStatusBar()

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	framed := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}

// renderModalStatusBar renders the status bar for modals.
func renderModalStatusBar() string {
	statusItems := []string{"up/down: Scroll", "ESC: Close"}
	return dimStyle.Render(strings.Join(statusItems, " | "))
}

// handleModalScroll applies shared scroll keys to a modal viewport.
// Returns true when the key requested a close.
func handleModalScroll(vp *viewport.Model, msg tea.KeyMsg) bool {
	switch msg.String() {
	case "escape", "esc", "q", "enter":
		return true
	case "up", "k":
		vp.ScrollUp(1)
	case "down", "j":
		vp.ScrollDown(1)
	case "pgup":
		vp.HalfPageUp()
	case "pgdown":
		vp.HalfPageDown()
	}
	return false
}
