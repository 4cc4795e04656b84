package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/vitrine/internal/browse"
)

var categoryBarStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("39")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Background(lipgloss.Color("42")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(lipgloss.Color("208")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Background(lipgloss.Color("201")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("244")),
}

// renderCategoryChart renders item counts per category as a bar chart with a
// legend. Counts come from the full item list, not the filtered view, so the
// chart stays stable while searching.
func renderCategoryChart(st browse.State, width, height int) string {
	cats := st.Categories()
	if len(cats) == 0 || height < 3 {
		return ""
	}

	counts := make(map[string]int, len(cats))
	for _, it := range st.Items {
		counts[it.Category]++
	}

	legendWidth := 22
	chartWidth := width - legendWidth - 2
	if chartWidth < 12 {
		chartWidth = 12
	}
	chartHeight := height - 1

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(3),
		barchart.WithNoAxis(),
	)

	for i, cat := range cats {
		style := categoryBarStyles[i%len(categoryBarStyles)]
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: cat, Value: float64(counts[cat]), Style: style},
			},
		})
	}
	bc.Draw()

	var legend strings.Builder
	for i, cat := range cats {
		swatch := categoryBarStyles[i%len(categoryBarStyles)].Render(" ")
		line := fmt.Sprintf("%s %-12s %d", swatch, cat, counts[cat])
		if cat == st.SelectedCategory {
			line = selectedRowStyle.Render(line)
		}
		legend.WriteString(line)
		legend.WriteString("\n")
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		bc.View(),
		"  ",
		legend.String(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Categories"), row)
}
