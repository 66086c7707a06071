package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/tui/components"
	"github.com/flixstream/flix/internal/tui/styles"
)

// View renders the full frame
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.player.IsOpen() {
		return m.player.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.view {
	case ViewBrowse:
		b.WriteString(m.renderBrowse())
	case ViewSearch:
		b.WriteString(m.renderSearch())
	case ViewFilter:
		b.WriteString(m.renderFilter())
	case ViewAdmin:
		b.WriteString(m.adminPanel.View())
	case ViewHelp:
		b.WriteString(m.renderHelp())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	logo := styles.LogoStyle.Render(" FLIX ")

	tabs := make([]string, 0, 3)
	for _, f := range []domain.CategoryFilter{domain.FilterAll, domain.FilterMovies, domain.FilterShows} {
		label := f.String()
		if f == m.category && m.view == ViewBrowse {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center, logo, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	right := styles.DimStyle.Render("? help · q quit")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderBrowse() string {
	rows := m.VisibleCollections()

	if len(rows) == 0 {
		if m.pending > 0 {
			return "\n " + styles.RenderSpinner(m.spinnerFrame) + styles.DimStyle.Render(" loading catalog...")
		}
		return "\n " + styles.DimStyle.Render("Nothing to show. The catalog may be unreachable.")
	}

	var b strings.Builder

	// Hero banner from the first row's lead item
	if m.rowIndex == 0 && len(rows[0].Items) > 0 {
		b.WriteString(components.RenderHero(rows[0].Items[0], m.width))
		b.WriteString("\n")
	}

	rowIdx := m.rowIndex
	if rowIdx >= len(rows) {
		rowIdx = len(rows) - 1
	}

	// Window the rows so the active one stays on screen
	maxRows := 3
	start := 0
	if rowIdx >= maxRows {
		start = rowIdx - maxRows + 1
	}
	for i := start; i < len(rows) && i < start+maxRows; i++ {
		sel := -1
		if i == rowIdx {
			sel = m.colIndex
		}
		b.WriteString(components.RenderRow(rows[i].Title(), rows[i].Items, sel, i == rowIdx, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.searchBar.View())
	b.WriteString("\n\n")

	switch {
	case m.search.loading:
		b.WriteString(" " + styles.RenderSpinner(m.spinnerFrame) + styles.DimStyle.Render(" searching..."))
	case m.search.query == "":
		b.WriteString(styles.DimStyle.Render(" Type to search across movies and TV shows."))
	default:
		heading := fmt.Sprintf("Results for %q", m.search.query)
		sel := m.searchSel
		if m.searchBar.Focused() {
			sel = -1
		}
		b.WriteString(components.RenderGrid(heading, m.search.results, sel, m.width, 3))
	}
	return b.String()
}

func (m Model) renderFilter() string {
	var b strings.Builder
	b.WriteString(m.filterBar.View())
	b.WriteString("\n\n")

	if m.filterBar.Query() == "" {
		b.WriteString(styles.DimStyle.Render(" Fuzzy filter across everything already loaded."))
		return b.String()
	}

	items := make([]domain.ContentItem, len(m.filterResults))
	for i, r := range m.filterResults {
		items[i] = r.Item
	}
	sel := m.filterSel
	if m.filterBar.Focused() {
		sel = -1
	}
	heading := fmt.Sprintf("%d matches", len(items))
	b.WriteString(components.RenderGrid(heading, items, sel, m.width, 3))
	return b.String()
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"↑/↓/←/→, hjkl", "navigate"},
		{"enter", "play selection"},
		{"i", "select without playing"},
		{"/", "search movies and shows"},
		{"f", "quick filter loaded titles"},
		{"c", "cycle category: All / Movies / TV Shows"},
		{"a", "open admin dashboard"},
		{"space", "play / pause (in player)"},
		{"←/→", "seek 10s (in player)"},
		{"m", "mute (in player)"},
		{"esc", "back / close"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Keyboard Reference"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styles.AccentStyle.Render(fmt.Sprintf("%-16s", r[0])),
			styles.DimStyle.Render(r[1])))
	}
	return b.String()
}

func (m Model) renderFooter() string {
	if m.status != "" {
		if m.statusIsError {
			return styles.ErrorStyle.Render(" ✗ " + m.status)
		}
		return styles.SuccessStyle.Render(" ✓ " + m.status)
	}

	var hints string
	switch m.view {
	case ViewBrowse:
		hints = "/ search · f filter · c category · a admin · enter play"
	case ViewSearch:
		hints = "type to search · enter focus results · esc back"
	case ViewFilter:
		hints = "type to filter · enter focus results · esc back"
	case ViewAdmin:
		hints = "tab switch tab · enter toggle · esc back"
	case ViewHelp:
		hints = "esc back"
	}
	return styles.DimStyle.Render(" " + hints)
}
