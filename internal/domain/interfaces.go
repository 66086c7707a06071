package domain

import "context"

// CatalogClient provides read-only parameterized fetches against the external
// catalog service. All calls are idempotent GETs with no provider side effects.
type CatalogClient interface {
	// Listing returns one page of the named collection
	Listing(ctx context.Context, key CollectionKey, page int) (Collection, error)

	// SearchMulti returns a mixed movie/show result list in source relevance
	// order for a free-text query
	SearchMulti(ctx context.Context, query string, page int) ([]ContentItem, error)
}

// AdminStore provides access to the hosted database's durable records
type AdminStore interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	ListProfiles(ctx context.Context) ([]Profile, error)
	UpdateProfileRole(ctx context.Context, userID string, role Role) error

	ListContent(ctx context.Context) ([]ContentRecord, error)
	SetContentFeatured(ctx context.Context, contentID string, featured bool) error

	AddFavorite(ctx context.Context, userID, contentID string) error
	RemoveFavorite(ctx context.Context, userID, contentID string) error
	ListFavorites(ctx context.Context, userID string) ([]Favorite, error)

	AddWatchlistEntry(ctx context.Context, userID, contentID string) error
	RemoveWatchlistEntry(ctx context.Context, userID, contentID string) error
	ListWatchlist(ctx context.Context, userID string) ([]WatchlistEntry, error)

	RecordWatchProgress(ctx context.Context, userID, contentID string, progressSeconds int) error
	ListWatchHistory(ctx context.Context, userID string) ([]WatchHistoryEntry, error)
}
