package tui

import (
	"github.com/flixstream/flix/internal/admin"
	"github.com/flixstream/flix/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error surfaced to the user
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CollectionLoadedMsg signals that one browse collection has been fetched
type CollectionLoadedMsg struct {
	Collection domain.Collection
}

// CollectionFailedMsg signals that one browse collection fetch failed.
// Per-collection failures are tolerated silently: the row never renders.
type CollectionFailedMsg struct {
	Key domain.CollectionKey
	Err error
}

// SearchResultsMsg carries the outcome of one search request. Seq ties the
// response to the request that issued it; the coordinator discards messages
// whose Seq is not the latest.
type SearchResultsMsg struct {
	Seq     int
	Query   string
	Results []domain.ContentItem
}

// SearchFailedMsg signals that one search request failed
type SearchFailedMsg struct {
	Seq int
	Err error
}

// StatusMsg sets a temporary status-bar message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar
type ClearStatusMsg struct{}

// TickMsg drives the loading spinner
type TickMsg struct{}

// PlayerTickMsg advances simulated playback. Gen identifies the overlay
// lifetime that scheduled it; stale generations are ignored.
type PlayerTickMsg struct {
	Gen int
}

// HideControlsMsg hides the player controls after inactivity
type HideControlsMsg struct {
	Gen int
}

// ScrubDoneMsg returns the player from scrubbing to its prior state
type ScrubDoneMsg struct {
	Gen int
}

// AdminLoadedMsg carries the admin dashboard aggregate
type AdminLoadedMsg struct {
	Dashboard *admin.Dashboard
}

// AdminDeniedMsg signals the viewer's role does not permit admin access
type AdminDeniedMsg struct{}

// AdminUpdatedMsg signals a successful admin mutation; the panel refetches
type AdminUpdatedMsg struct {
	Message string
}
