package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/tui/styles"
)

// PlayerState is the playback surface's state machine
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerPlaying
	PlayerPaused
	PlayerScrubbing
)

const (
	// controlsHideDelay is how long controls stay up during playback
	controlsHideDelay = 3 * time.Second

	// scrubSettleDelay is how long after the last seek before the player
	// returns to its prior state
	scrubSettleDelay = 800 * time.Millisecond

	scrubStep    = 10 * time.Second
	demoDuration = 10 * time.Minute
)

// demoVideoURLs are the simulated streams; real integration is out of scope.
// The URL is chosen by item ID so the same item always maps to the same clip.
var demoVideoURLs = []string{
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
}

// DemoVideoURL returns the simulated stream URL for an item
func DemoVideoURL(itemID int) string {
	if itemID < 0 {
		itemID = -itemID
	}
	return demoVideoURLs[itemID%len(demoVideoURLs)]
}

// Player is the playback overlay. Timer resources are tied to the overlay's
// visible lifetime through generation counters: tickGen guards the playback
// tick chain, ctlGen guards the controls-hide and scrub-settle timers.
// Bumping a generation invalidates every pending message that carries the
// old value, so no timer outlives the surface that armed it.
type Player struct {
	state           PlayerState
	resumeState     PlayerState // state to restore after scrubbing settles
	item            *domain.ContentItem
	open            bool
	muted           bool
	position        time.Duration
	duration        time.Duration
	controlsVisible bool
	tickGen         int
	ctlGen          int

	width  int
	height int
}

// NewPlayer creates a closed player overlay
func NewPlayer() Player {
	return Player{duration: demoDuration}
}

// IsOpen returns true while the overlay is visible
func (p Player) IsOpen() bool { return p.open }

// State returns the current playback state
func (p Player) State() PlayerState { return p.state }

// Item returns the item being played, or nil when closed
func (p Player) Item() *domain.ContentItem { return p.item }

// Muted returns the mute toggle
func (p Player) Muted() bool { return p.muted }

// Position returns the simulated playback position
func (p Player) Position() time.Duration { return p.position }

// ControlsVisible returns true while the control strip is rendered
func (p Player) ControlsVisible() bool { return p.controlsVisible }

// Open shows the overlay for an item and starts simulated playback
func (p *Player) Open(item domain.ContentItem) tea.Cmd {
	p.tickGen++
	p.ctlGen++
	p.item = &item
	p.open = true
	p.state = PlayerPlaying
	p.muted = false
	p.position = 0
	p.duration = demoDuration
	p.controlsVisible = true
	return tea.Batch(PlayerTickCmd(p.tickGen), HideControlsCmd(p.ctlGen, controlsHideDelay))
}

// Close hides the overlay and releases its timers
func (p *Player) Close() {
	p.tickGen++
	p.ctlGen++
	p.open = false
	p.item = nil
	p.state = PlayerIdle
	p.position = 0
	p.controlsVisible = false
}

// SetSize updates the overlay dimensions
func (p *Player) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// TogglePlay flips between playing and paused. During scrubbing it resumes
// playback immediately instead of waiting for the settle timer.
func (p *Player) TogglePlay() tea.Cmd {
	if !p.open {
		return nil
	}
	p.showControls()
	switch p.state {
	case PlayerPlaying:
		p.state = PlayerPaused
		return nil
	case PlayerPaused, PlayerScrubbing:
		return p.resumePlayback()
	default:
		return nil
	}
}

// ToggleMute flips the mute toggle
func (p *Player) ToggleMute() tea.Cmd {
	if !p.open {
		return nil
	}
	p.muted = !p.muted
	p.showControls()
	if p.state == PlayerPlaying {
		return HideControlsCmd(p.ctlGen, controlsHideDelay)
	}
	return nil
}

// Scrub seeks by one step and enters the scrubbing state. The prior state is
// restored once seeking settles.
func (p *Player) Scrub(forward bool) tea.Cmd {
	if !p.open {
		return nil
	}
	if p.state != PlayerScrubbing {
		p.resumeState = p.state
		p.state = PlayerScrubbing
	}
	p.showControls()

	if forward {
		p.position += scrubStep
		if p.position > p.duration {
			p.position = p.duration
		}
	} else {
		p.position -= scrubStep
		if p.position < 0 {
			p.position = 0
		}
	}

	return ScrubDoneCmd(p.ctlGen, scrubSettleDelay)
}

// HandleTick advances simulated playback by one second
func (p *Player) HandleTick(msg PlayerTickMsg) tea.Cmd {
	if !p.open || msg.Gen != p.tickGen || p.state != PlayerPlaying {
		return nil
	}
	p.position += time.Second
	if p.position >= p.duration {
		p.position = p.duration
		p.state = PlayerPaused
		p.controlsVisible = true
		return nil
	}
	return PlayerTickCmd(p.tickGen)
}

// HandleHideControls hides the controls if playback is still running
func (p *Player) HandleHideControls(msg HideControlsMsg) {
	if !p.open || msg.Gen != p.ctlGen {
		return
	}
	if p.state == PlayerPlaying {
		p.controlsVisible = false
	}
}

// HandleScrubDone restores the pre-scrub state after seeking settles
func (p *Player) HandleScrubDone(msg ScrubDoneMsg) tea.Cmd {
	if !p.open || msg.Gen != p.ctlGen || p.state != PlayerScrubbing {
		return nil
	}
	if p.resumeState == PlayerPlaying {
		return p.resumePlayback()
	}
	p.state = p.resumeState
	return nil
}

// resumePlayback enters the playing state and re-arms both timers. The tick
// generation is bumped so an older tick chain cannot double-advance.
func (p *Player) resumePlayback() tea.Cmd {
	p.state = PlayerPlaying
	p.tickGen++
	return tea.Batch(PlayerTickCmd(p.tickGen), HideControlsCmd(p.ctlGen, controlsHideDelay))
}

// showControls makes the control strip visible and invalidates any pending
// hide or settle timer
func (p *Player) showControls() {
	p.controlsVisible = true
	p.ctlGen++
}

// View renders the player overlay
func (p Player) View() string {
	if !p.open || p.item == nil {
		return ""
	}

	innerWidth := p.width * 2 / 3
	if innerWidth < 40 {
		innerWidth = 40
	}

	title := styles.HeroTitleStyle.Render(styles.Truncate(p.item.Title, innerWidth))
	subtitle := styles.DimStyle.Render(p.item.Kind.String() + " · HD Quality")

	body := title + "\n" + subtitle + "\n\n"

	if p.controlsVisible {
		percent := 0.0
		if p.duration > 0 {
			percent = float64(p.position) / float64(p.duration) * 100
		}
		body += styles.RenderProgressBar(percent, innerWidth) + "\n"
		body += styles.DimStyle.Render(fmt.Sprintf("%s / %s", formatClock(p.position), formatClock(p.duration))) + "\n\n"
		body += p.renderControls()
	} else {
		body += styles.DimStyle.Render("▶ " + DemoVideoURL(p.item.ID))
	}

	box := styles.PlayerBoxStyle.Width(innerWidth + 6).Render(body)
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
}

func (p Player) renderControls() string {
	var stateLabel string
	switch p.state {
	case PlayerPlaying:
		stateLabel = "▶ Playing"
	case PlayerPaused:
		stateLabel = "⏸ Paused"
	case PlayerScrubbing:
		stateLabel = "⏩ Seeking"
	default:
		stateLabel = "Idle"
	}

	mute := "sound on"
	if p.muted {
		mute = "muted"
	}

	hints := styles.DimStyle.Render("space play/pause · ←/→ seek · m mute · esc close")
	return styles.AccentStyle.Render(stateLabel) + "  " +
		styles.DimBadgeStyle.Render(mute) + "\n" + hints
}

// formatClock formats a duration as M:SS or H:MM:SS
func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
