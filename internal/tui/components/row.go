package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/tui/styles"
)

const (
	cardWidth  = 22
	cardHeight = 4
)

// RenderRow renders one horizontal collection row. The selected index is
// highlighted when the row itself is active. Scrolling keeps the selected
// card in view by windowing the item slice.
func RenderRow(title string, items []domain.ContentItem, selected int, active bool, width int) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.RowHeadingStyle.Render(title))
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %d titles", len(items))))
	b.WriteString("\n")

	perRow := width / (cardWidth + 2)
	if perRow < 1 {
		perRow = 1
	}

	start := 0
	if active && selected >= perRow {
		start = selected - perRow + 1
	}
	end := start + perRow
	if end > len(items) {
		end = len(items)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, renderCard(items[i], active && i == selected))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if end < len(items) {
		b.WriteString(styles.DimStyle.Render(" ›"))
	}
	return b.String()
}

func renderCard(item domain.ContentItem, selected bool) string {
	inner := cardWidth - 4

	title := styles.Truncate(item.Title, inner)
	meta := item.Kind.String()
	if y := item.ReleaseYear(); y > 0 {
		meta += " · " + strconv.Itoa(y)
	}

	body := title + "\n" +
		styles.DimStyle.Render(styles.Truncate(meta, inner)) + "\n" +
		styles.RatingStyle.Render("★ "+item.FormattedRating())

	if selected {
		return styles.CardSelectedStyle.Width(cardWidth).Height(cardHeight).Render(body)
	}
	return styles.CardStyle.Width(cardWidth).Height(cardHeight).Render(body)
}

// RenderHero renders the banner for the highlighted item at the top of the
// browse screen
func RenderHero(item domain.ContentItem, width int) string {
	inner := width - 8
	if inner < 20 {
		inner = 20
	}

	title := styles.HeroTitleStyle.Render(styles.Truncate(item.Title, inner))
	meta := styles.AccentStyle.Render(item.Kind.String())
	if y := item.ReleaseYear(); y > 0 {
		meta += styles.DimStyle.Render(" · " + strconv.Itoa(y))
	}
	meta += "  " + styles.RatingStyle.Render("★ "+item.FormattedRating())

	overview := styles.DimStyle.Render(wrapText(item.Overview, inner, 3))

	body := title + "\n" + meta + "\n\n" + overview + "\n\n" +
		styles.BadgeStyle.Render(" ▶ Play ") + " " + styles.DimBadgeStyle.Render(" More Info ")

	return styles.HeroBoxStyle.Width(width - 2).Render(body)
}

// wrapText word-wraps to width, keeping at most maxLines lines
func wrapText(s string, width, maxLines int) string {
	if s == "" {
		return "No overview available."
	}
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		if line == "" {
			line = w
		} else if len(line)+1+len(w) <= width {
			line += " " + w
		} else {
			lines = append(lines, line)
			line = w
			if len(lines) == maxLines {
				lines[maxLines-1] += "…"
				return strings.Join(lines, "\n")
			}
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
