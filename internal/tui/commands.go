package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flixstream/flix/internal/admin"
	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/service"
)

// Command factories for async operations

// LoadCollectionCmd fetches one browse collection
func LoadCollectionCmd(svc *service.CatalogService, key domain.CollectionKey) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		collection, err := svc.FetchCollection(ctx, key)
		if err != nil {
			return CollectionFailedMsg{Key: key, Err: err}
		}
		return CollectionLoadedMsg{Collection: collection}
	}
}

// LoadAllCollectionsCmd fetches every browse collection concurrently.
// Each fetch writes to its own collection slot, so no ordering dependency
// exists between them.
func LoadAllCollectionsCmd(svc *service.CatalogService) tea.Cmd {
	cmds := make([]tea.Cmd, len(domain.CollectionOrder))
	for i, key := range domain.CollectionOrder {
		cmds[i] = LoadCollectionCmd(svc, key)
	}
	return tea.Batch(cmds...)
}

// SearchCmd issues one multi-type search tagged with a sequence number
func SearchCmd(svc *service.CatalogService, query string, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		results, err := svc.Search(ctx, query)
		if err != nil {
			return SearchFailedMsg{Seq: seq, Err: err}
		}
		return SearchResultsMsg{Seq: seq, Query: query, Results: results}
	}
}

// LoadAdminCmd loads the admin dashboard for the configured user
func LoadAdminCmd(svc *admin.Service, viewerID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		dashboard, err := svc.LoadDashboard(ctx, viewerID)
		if errors.Is(err, domain.ErrAccessDenied) {
			return AdminDeniedMsg{}
		}
		if err != nil {
			return ErrMsg{Err: err, Context: "loading admin panel"}
		}
		return AdminLoadedMsg{Dashboard: dashboard}
	}
}

// ToggleUserRoleCmd flips a user's admin role, then signals a refetch
func ToggleUserRoleCmd(svc *admin.Service, viewerID, targetID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := svc.ToggleUserRole(ctx, viewerID, targetID); err != nil {
			return ErrMsg{Err: err, Context: "updating role"}
		}
		return AdminUpdatedMsg{Message: "Role updated"}
	}
}

// ToggleFeaturedCmd flips a content row's featured flag, then signals a refetch
func ToggleFeaturedCmd(svc *admin.Service, viewerID string, rec domain.ContentRecord) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := svc.ToggleContentFeatured(ctx, viewerID, rec); err != nil {
			return ErrMsg{Err: err, Context: "updating featured flag"}
		}
		return AdminUpdatedMsg{Message: "Featured flag updated"}
	}
}

// RecordProgressCmd persists playback progress for the watch history.
// Failures are swallowed: progress tracking never interrupts playback.
func RecordProgressCmd(store domain.AdminStore, userID, contentID string, progressSeconds int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_ = store.RecordWatchProgress(ctx, userID, contentID, progressSeconds)
		return nil
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// PlayerTickCmd schedules the next simulated playback tick
func PlayerTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return PlayerTickMsg{Gen: gen}
	})
}

// HideControlsCmd schedules the controls auto-hide
func HideControlsCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return HideControlsMsg{Gen: gen}
	})
}

// ScrubDoneCmd schedules the return from scrubbing to the prior state
func ScrubDoneCmd(gen int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ScrubDoneMsg{Gen: gen}
	})
}
