package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flixstream/flix/internal/tui/styles"
)

// SearchBar wraps a text input used for the remote multi-search
type SearchBar struct {
	input   textinput.Model
	visible bool
	loading bool
	frame   int
	width   int
}

// NewSearchBar creates a hidden search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies and shows..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 120
	return SearchBar{input: ti}
}

// Show makes the bar visible and focused
func (s *SearchBar) Show() tea.Cmd {
	s.visible = true
	return s.input.Focus()
}

// Hide clears and hides the bar
func (s *SearchBar) Hide() {
	s.visible = false
	s.loading = false
	s.input.Blur()
	s.input.SetValue("")
}

// Visible returns true when the bar is shown
func (s SearchBar) Visible() bool { return s.visible }

// Focused returns true when the bar owns keyboard input
func (s SearchBar) Focused() bool { return s.visible && s.input.Focused() }

// Query returns the trimmed input text
func (s SearchBar) Query() string {
	return strings.TrimSpace(s.input.Value())
}

// RawValue returns the input text as typed
func (s SearchBar) RawValue() string { return s.input.Value() }

// SetLoading toggles the in-flight indicator
func (s *SearchBar) SetLoading(loading bool) {
	s.loading = loading
}

// Loading returns the in-flight indicator
func (s SearchBar) Loading() bool { return s.loading }

// SetWidth sets the render width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = width - 12
	if s.input.Width < 10 {
		s.input.Width = 10
	}
}

// Blur releases keyboard focus without hiding the bar
func (s *SearchBar) Blur() { s.input.Blur() }

// Focus reclaims keyboard focus
func (s *SearchBar) Focus() tea.Cmd { return s.input.Focus() }

// Update forwards messages to the text input
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	if !s.visible {
		return nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Tick advances the spinner frame
func (s *SearchBar) Tick() {
	s.frame++
}

// View renders the search bar line
func (s SearchBar) View() string {
	if !s.visible {
		return ""
	}
	line := s.input.View()
	if s.loading {
		line += "  " + styles.RenderSpinner(s.frame) + styles.DimStyle.Render(" searching")
	}
	return line
}
