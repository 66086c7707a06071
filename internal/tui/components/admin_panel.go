package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flixstream/flix/internal/admin"
	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/tui/styles"
)

// AdminTab identifies a panel tab
type AdminTab int

const (
	TabUsers AdminTab = iota
	TabContent
	TabAnalytics
)

var adminTabTitles = []string{"Users", "Content", "Analytics"}

// AdminPanel renders the moderation dashboard. It holds cursor state only;
// the data itself always comes from a fresh dashboard load so toggles are
// reflected by re-fetching rather than by mutating local copies.
type AdminPanel struct {
	dash    *admin.Dashboard
	tab     AdminTab
	cursor  int
	denied  bool
	loading bool
	width   int
	height  int
}

// NewAdminPanel creates an empty panel
func NewAdminPanel() AdminPanel {
	return AdminPanel{}
}

// SetLoading marks the panel as waiting for a dashboard load
func (a *AdminPanel) SetLoading(loading bool) {
	a.loading = loading
}

// SetDashboard installs loaded dashboard data, keeping the cursor in range
func (a *AdminPanel) SetDashboard(dash admin.Dashboard) {
	a.dash = &dash
	a.denied = false
	a.loading = false
	a.clampCursor()
}

// SetDenied marks the panel as access-denied
func (a *AdminPanel) SetDenied() {
	a.dash = nil
	a.denied = true
	a.loading = false
}

// Reset clears all panel state
func (a *AdminPanel) Reset() {
	a.dash = nil
	a.denied = false
	a.loading = false
	a.tab = TabUsers
	a.cursor = 0
}

// SetSize updates the render dimensions
func (a *AdminPanel) SetSize(width, height int) {
	a.width = width
	a.height = height
}

// Loaded returns true once dashboard data is present
func (a AdminPanel) Loaded() bool { return a.dash != nil }

// Denied returns true when the viewer was refused access
func (a AdminPanel) Denied() bool { return a.denied }

// NextTab cycles to the next tab
func (a *AdminPanel) NextTab() {
	a.tab = (a.tab + 1) % AdminTab(len(adminTabTitles))
	a.cursor = 0
}

// PrevTab cycles to the previous tab
func (a *AdminPanel) PrevTab() {
	a.tab = (a.tab + AdminTab(len(adminTabTitles)) - 1) % AdminTab(len(adminTabTitles))
	a.cursor = 0
}

// MoveCursor moves the row cursor by delta within the active tab's rows
func (a *AdminPanel) MoveCursor(delta int) {
	a.cursor += delta
	a.clampCursor()
}

// SelectedUser returns the profile under the cursor on the users tab
func (a AdminPanel) SelectedUser() (domain.Profile, bool) {
	if a.dash == nil || a.tab != TabUsers || a.cursor >= len(a.dash.Users) {
		return domain.Profile{}, false
	}
	return a.dash.Users[a.cursor], true
}

// SelectedContent returns the record under the cursor on the content tab
func (a AdminPanel) SelectedContent() (domain.ContentRecord, bool) {
	if a.dash == nil || a.tab != TabContent || a.cursor >= len(a.dash.Content) {
		return domain.ContentRecord{}, false
	}
	return a.dash.Content[a.cursor], true
}

func (a *AdminPanel) clampCursor() {
	max := a.rowCount() - 1
	if a.cursor > max {
		a.cursor = max
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a AdminPanel) rowCount() int {
	if a.dash == nil {
		return 0
	}
	switch a.tab {
	case TabUsers:
		return len(a.dash.Users)
	case TabContent:
		return len(a.dash.Content)
	default:
		return 0
	}
}

// View renders the panel
func (a AdminPanel) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Admin Dashboard"))
	b.WriteString("\n\n")

	if a.denied {
		b.WriteString(styles.ErrorStyle.Render("Access denied"))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Only moderators and admins may open this panel."))
		return b.String()
	}
	if a.loading {
		b.WriteString(styles.DimStyle.Render("Loading dashboard..."))
		return b.String()
	}
	if a.dash == nil {
		b.WriteString(styles.DimStyle.Render("Not connected to a database."))
		return b.String()
	}

	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")

	switch a.tab {
	case TabUsers:
		b.WriteString(a.renderUsers())
	case TabContent:
		b.WriteString(a.renderContent())
	case TabAnalytics:
		b.WriteString(a.renderAnalytics())
	}

	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("tab switch · ↑/↓ move · enter toggle · esc back"))
	return b.String()
}

func (a AdminPanel) renderTabs() string {
	tabs := make([]string, len(adminTabTitles))
	for i, t := range adminTabTitles {
		if AdminTab(i) == a.tab {
			tabs[i] = styles.ActiveTabStyle.Render(t)
		} else {
			tabs[i] = styles.TabStyle.Render(t)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a AdminPanel) renderUsers() string {
	var b strings.Builder
	b.WriteString(styles.TableHeaderStyle.Render(fmt.Sprintf("%-34s %-12s %-12s %s", "EMAIL", "ROLE", "STATUS", "JOINED")))
	b.WriteString("\n")

	for i, u := range a.dash.Users {
		role := string(u.Role)
		if u.Role == domain.RoleAdmin {
			role = styles.BadgeStyle.Render(role)
		}
		line := fmt.Sprintf("%-34s %-12s %-12s %s",
			styles.Truncate(u.Email, 33), role, u.SubscriptionStatus, u.CreatedAt.Format("2006-01-02"))
		if i == a.cursor {
			b.WriteString(styles.TableRowSelectedStyle.Render(line))
		} else {
			b.WriteString(styles.TableRowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(a.dash.Users) == 0 {
		b.WriteString(styles.DimStyle.Render("No users."))
	}
	return b.String()
}

func (a AdminPanel) renderContent() string {
	var b strings.Builder
	b.WriteString(styles.TableHeaderStyle.Render(fmt.Sprintf("%-38s %-8s %-8s %s", "TITLE", "KIND", "RATING", "FEATURED")))
	b.WriteString("\n")

	for i, c := range a.dash.Content {
		featured := styles.DimStyle.Render("—")
		if c.Featured {
			featured = styles.SuccessStyle.Render("★ yes")
		}
		line := fmt.Sprintf("%-38s %-8s %-8.1f %s",
			styles.Truncate(c.Title, 37), c.Kind.String(), c.Rating, featured)
		if i == a.cursor {
			b.WriteString(styles.TableRowSelectedStyle.Render(line))
		} else {
			b.WriteString(styles.TableRowStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if len(a.dash.Content) == 0 {
		b.WriteString(styles.DimStyle.Render("No content rows."))
	}
	return b.String()
}

func (a AdminPanel) renderAnalytics() string {
	s := a.dash.Stats
	cards := []string{
		statCard("Total Users", fmt.Sprintf("%d", s.TotalUsers)),
		statCard("Total Content", fmt.Sprintf("%d", s.TotalContent)),
		statCard("Movies", fmt.Sprintf("%d", s.TotalMovies)),
		statCard("TV Shows", fmt.Sprintf("%d", s.TotalShows)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func statCard(label, value string) string {
	body := styles.HeroTitleStyle.Render(value) + "\n" + styles.DimStyle.Render(label)
	return styles.CardStyle.Width(18).Render(body)
}
