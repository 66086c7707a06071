package admin

import (
	"context"
	"log/slog"

	"github.com/flixstream/flix/internal/domain"
)

// Stats summarizes the hosted database for the admin dashboard
type Stats struct {
	TotalUsers   int
	TotalContent int
	TotalMovies  int
	TotalShows   int
}

// Dashboard is the aggregate the admin panel renders
type Dashboard struct {
	Viewer  domain.Profile
	Users   []domain.Profile
	Content []domain.ContentRecord
	Stats   Stats
}

// Service gates admin panel access by role and aggregates the dashboard.
// Every mutation re-checks the viewer's role; the panel refetches after
// mutations rather than patching local copies.
type Service struct {
	store  domain.AdminStore
	logger *slog.Logger
}

// NewService creates a new admin service
func NewService(store domain.AdminStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// LoadDashboard checks the viewer's role and fetches the admin aggregate.
// Returns domain.ErrAccessDenied when the role does not permit access.
func (s *Service) LoadDashboard(ctx context.Context, viewerID string) (*Dashboard, error) {
	viewer, err := s.store.GetProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if !viewer.Role.CanAccessAdmin() {
		s.logger.Info("admin access denied", "user", viewerID, "role", viewer.Role)
		return nil, domain.ErrAccessDenied
	}

	users, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	content, err := s.store.ListContent(ctx)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Viewer:  *viewer,
		Users:   users,
		Content: content,
		Stats:   ComputeStats(users, content),
	}, nil
}

// ToggleUserRole flips a user between admin and regular user. Only a full
// admin may change roles; moderators get a read-only panel.
func (s *Service) ToggleUserRole(ctx context.Context, viewerID, targetID string) error {
	viewer, err := s.store.GetProfile(ctx, viewerID)
	if err != nil {
		return err
	}
	if viewer.Role != domain.RoleAdmin {
		return domain.ErrAccessDenied
	}

	target, err := s.store.GetProfile(ctx, targetID)
	if err != nil {
		return err
	}

	newRole := domain.RoleAdmin
	if target.Role == domain.RoleAdmin {
		newRole = domain.RoleUser
	}
	return s.store.UpdateProfileRole(ctx, targetID, newRole)
}

// ToggleContentFeatured flips the featured flag on a content row
func (s *Service) ToggleContentFeatured(ctx context.Context, viewerID string, rec domain.ContentRecord) error {
	viewer, err := s.store.GetProfile(ctx, viewerID)
	if err != nil {
		return err
	}
	if viewer.Role != domain.RoleAdmin {
		return domain.ErrAccessDenied
	}
	return s.store.SetContentFeatured(ctx, rec.ID, !rec.Featured)
}

// ComputeStats derives dashboard counters from fetched rows
func ComputeStats(users []domain.Profile, content []domain.ContentRecord) Stats {
	stats := Stats{
		TotalUsers:   len(users),
		TotalContent: len(content),
	}
	for _, rec := range content {
		switch rec.Kind {
		case domain.KindMovie:
			stats.TotalMovies++
		case domain.KindShow:
			stats.TotalShows++
		}
	}
	return stats
}
