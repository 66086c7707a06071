package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/tui/styles"
)

// RenderGrid renders search results as a wrapping grid of cards. Selection
// moves across the grid in reading order.
func RenderGrid(heading string, items []domain.ContentItem, selected int, width, maxRows int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(heading))
	b.WriteString("\n\n")

	if len(items) == 0 {
		b.WriteString(styles.DimStyle.Render("No results found."))
		return b.String()
	}

	perRow := GridColumns(width)
	start := 0
	if selected >= 0 {
		selectedRow := selected / perRow
		if selectedRow >= maxRows {
			start = (selectedRow - maxRows + 1) * perRow
		}
	}

	rows := 0
	for i := start; i < len(items) && rows < maxRows; i += perRow {
		end := i + perRow
		if end > len(items) {
			end = len(items)
		}
		cards := make([]string, 0, end-i)
		for j := i; j < end; j++ {
			cards = append(cards, renderCard(items[j], j == selected))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
		rows++
	}

	shown := rows * perRow
	if start+shown < len(items) {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("… %d more", len(items)-start-shown)))
	}
	return b.String()
}

// GridColumns returns how many cards fit per grid row at the given width
func GridColumns(width int) int {
	perRow := width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}
	return perRow
}
