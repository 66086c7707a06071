package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixstream/flix/internal/domain"
)

func testItem() domain.ContentItem {
	return domain.ContentItem{ID: 603, Kind: domain.KindMovie, Title: "The Matrix"}
}

func TestPlayerOpenStartsPlayback(t *testing.T) {
	p := NewPlayer()

	cmd := p.Open(testItem())
	require.NotNil(t, cmd)

	assert.True(t, p.IsOpen())
	assert.Equal(t, PlayerPlaying, p.State())
	assert.True(t, p.ControlsVisible())
	assert.Zero(t, p.Position())
	require.NotNil(t, p.Item())
	assert.Equal(t, "The Matrix", p.Item().Title)
}

func TestPlayerTickAdvancesPlayback(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())

	cmd := p.HandleTick(PlayerTickMsg{Gen: p.tickGen})
	assert.NotNil(t, cmd, "playback reschedules its own tick")
	assert.Equal(t, time.Second, p.Position())
}

func TestPlayerIgnoresStaleTick(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())
	staleGen := p.tickGen
	p.Close()
	p.Open(testItem())

	cmd := p.HandleTick(PlayerTickMsg{Gen: staleGen})
	assert.Nil(t, cmd)
	assert.Zero(t, p.Position(), "a tick from a previous session must not advance playback")
}

func TestPlayerPauseStopsAdvancing(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())

	p.TogglePlay()
	assert.Equal(t, PlayerPaused, p.State())

	cmd := p.HandleTick(PlayerTickMsg{Gen: p.tickGen})
	assert.Nil(t, cmd)
	assert.Zero(t, p.Position())
}

func TestPlayerResumeInvalidatesOldTickChain(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())
	genWhilePlaying := p.tickGen

	p.TogglePlay() // pause
	cmd := p.TogglePlay()
	require.NotNil(t, cmd, "resume re-arms the tick")

	assert.Equal(t, PlayerPlaying, p.State())
	assert.NotEqual(t, genWhilePlaying, p.tickGen)
	assert.Nil(t, p.HandleTick(PlayerTickMsg{Gen: genWhilePlaying}))
}

func TestPlayerScrubClampsAtBounds(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())

	p.Scrub(false)
	assert.Zero(t, p.Position(), "seeking back from zero stays at zero")

	p.position = p.duration - time.Second
	p.Scrub(true)
	assert.Equal(t, p.duration, p.Position(), "seeking forward clamps at the end")
}

func TestPlayerScrubRestoresPriorState(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())
	p.TogglePlay() // paused

	p.Scrub(true)
	assert.Equal(t, PlayerScrubbing, p.State())

	cmd := p.HandleScrubDone(ScrubDoneMsg{Gen: p.ctlGen})
	assert.Nil(t, cmd, "returning to paused needs no timer")
	assert.Equal(t, PlayerPaused, p.State())
}

func TestPlayerScrubResumesPlaying(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())

	p.Scrub(true)
	p.Scrub(true)
	assert.Equal(t, 2*scrubStep, p.Position())

	cmd := p.HandleScrubDone(ScrubDoneMsg{Gen: p.ctlGen})
	assert.NotNil(t, cmd, "returning to playing restarts the tick")
	assert.Equal(t, PlayerPlaying, p.State())
}

func TestPlayerIgnoresStaleScrubSettle(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())

	p.Scrub(true)
	staleGen := p.ctlGen
	p.Scrub(true) // second keypress re-arms the settle timer

	assert.Nil(t, p.HandleScrubDone(ScrubDoneMsg{Gen: staleGen}))
	assert.Equal(t, PlayerScrubbing, p.State(), "only the latest settle timer returns from scrubbing")
}

func TestPlayerControlsAutoHideOnlyWhilePlaying(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())

	p.HandleHideControls(HideControlsMsg{Gen: p.ctlGen})
	assert.False(t, p.ControlsVisible())

	p.TogglePlay() // paused, controls shown again
	p.HandleHideControls(HideControlsMsg{Gen: p.ctlGen})
	assert.True(t, p.ControlsVisible(), "controls stay up while paused")
}

func TestPlayerMuteKeepsControlsTimerFresh(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())
	staleGen := p.ctlGen

	cmd := p.ToggleMute()
	assert.True(t, p.Muted())
	assert.NotNil(t, cmd, "mute during playback re-arms the hide timer")

	p.HandleHideControls(HideControlsMsg{Gen: staleGen})
	assert.True(t, p.ControlsVisible(), "the superseded hide timer is ignored")
}

func TestPlayerPausesAtEndOfStream(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())
	p.position = p.duration - time.Second

	cmd := p.HandleTick(PlayerTickMsg{Gen: p.tickGen})
	assert.Nil(t, cmd)
	assert.Equal(t, PlayerPaused, p.State())
	assert.Equal(t, p.duration, p.Position())
	assert.True(t, p.ControlsVisible())
}

func TestPlayerCloseResetsEverything(t *testing.T) {
	p := NewPlayer()
	p.Open(testItem())
	p.position = 90 * time.Second

	p.Close()

	assert.False(t, p.IsOpen())
	assert.Equal(t, PlayerIdle, p.State())
	assert.Nil(t, p.Item())
	assert.Zero(t, p.Position())
}

func TestDemoVideoURLIsStablePerItem(t *testing.T) {
	first := DemoVideoURL(603)
	assert.Equal(t, first, DemoVideoURL(603))
	assert.Contains(t, first, "https://")
	assert.NotEmpty(t, DemoVideoURL(-7), "negative IDs still map to a clip")
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:05", formatClock(5*time.Second))
	assert.Equal(t, "10:00", formatClock(10*time.Minute))
	assert.Equal(t, "1:01:01", formatClock(time.Hour+time.Minute+time.Second))
}
