package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	BrandRed   = lipgloss.Color("#E50914")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Gold       = lipgloss.Color("#F59E0B")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(BrandRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	RatingStyle = lipgloss.NewStyle().
			Foreground(Gold)
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(BrandRed).
			Bold(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(BrandRed).
			Bold(true).
			Padding(0, 1)
)

// Card styles for content rows and the results grid
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BrandRed).
				Padding(0, 1)

	RowHeadingStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginLeft(1)
)

// Hero banner styles
var (
	HeroTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	HeroBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(BrandRed).
			PaddingLeft(2)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BrandRed).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Player overlay styles
var (
	PlayerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(BrandRed).
			Padding(1, 3)

	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(BrandRed)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(DimGray)
)

// Table styles for the admin panel
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Bold(true).
				Underline(true)

	TableRowStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	TableRowSelectedStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(BrandRed).
			Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)
)

// Spinner style and frames
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(BrandRed)

	SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Helper functions

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// RenderProgressBar renders a progress bar filled to percent
func RenderProgressBar(percent float64, width int) string {
	if width < 3 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}

	bar := ""
	for i := 0; i < filled; i++ {
		bar += ProgressFullStyle.Render("█")
	}
	for i := filled; i < width; i++ {
		bar += ProgressEmptyStyle.Render("░")
	}
	return bar
}

// RenderSpinner renders one spinner frame
func RenderSpinner(frame int) string {
	return SpinnerStyle.Render(SpinnerFrames[frame%len(SpinnerFrames)])
}
