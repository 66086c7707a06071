package domain

import (
	"fmt"
	"strconv"
)

// ContentKind distinguishes movies from TV shows. The kind is assigned once
// at ingestion from the source endpoint context, never inferred from which
// optional fields happen to be present in a payload.
type ContentKind int

const (
	KindMovie ContentKind = iota
	KindShow
)

// String returns a human-readable representation of the content kind
func (k ContentKind) String() string {
	switch k {
	case KindMovie:
		return "Movie"
	case KindShow:
		return "TV Show"
	default:
		return "Unknown"
	}
}

// ContentItem represents one movie or show from the catalog service
type ContentItem struct {
	ID           int         // Catalog-service numeric identifier
	Kind         ContentKind // Movie or Show, set at ingestion
	Title        string      // Display title (movie title or show name)
	Overview     string      // Plot synopsis
	PosterPath   string      // Partial poster path ("/abc123.jpg")
	BackdropPath string      // Partial backdrop path
	ReleaseDate  string      // "2006-01-02" (first air date for shows)
	Rating       float64     // Average vote on a 0-10 scale
	VoteCount    int         // Non-negative vote count
	Popularity   float64     // Catalog-service popularity score
	Language     string      // Original-language code ("en")
	GenreIDs     []int       // Catalog-service genre identifiers
}

// ReleaseYear returns the four-digit release year, or 0 if unknown
func (c ContentItem) ReleaseYear() int {
	if len(c.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(c.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// FormattedRating returns the rating as a single-decimal string ("7.8")
func (c ContentItem) FormattedRating() string {
	return fmt.Sprintf("%.1f", c.Rating)
}

// DisplayTitle returns the title with release year when known
func (c ContentItem) DisplayTitle() string {
	if year := c.ReleaseYear(); year > 0 {
		return fmt.Sprintf("%s (%d)", c.Title, year)
	}
	return c.Title
}

// CollectionKey identifies one named listing from the catalog service
type CollectionKey string

const (
	CollectionTrending      CollectionKey = "trending"
	CollectionPopularMovies CollectionKey = "popular-movies"
	CollectionPopularShows  CollectionKey = "popular-shows"
	CollectionTopMovies     CollectionKey = "top-rated-movies"
	CollectionTopShows      CollectionKey = "top-rated-shows"
	CollectionNowPlaying    CollectionKey = "now-playing"
)

// CollectionOrder is the fixed row order for the browse view. It does not
// depend on the active category filter.
var CollectionOrder = []CollectionKey{
	CollectionTrending,
	CollectionPopularMovies,
	CollectionPopularShows,
	CollectionTopMovies,
	CollectionTopShows,
	CollectionNowPlaying,
}

// CollectionTitle returns the display heading for a collection key
func CollectionTitle(key CollectionKey) string {
	switch key {
	case CollectionTrending:
		return "Trending Now"
	case CollectionPopularMovies:
		return "Popular Movies"
	case CollectionPopularShows:
		return "Popular TV Shows"
	case CollectionTopMovies:
		return "Top Rated Movies"
	case CollectionTopShows:
		return "Top Rated TV Shows"
	case CollectionNowPlaying:
		return "Now Playing"
	default:
		return string(key)
	}
}

// Collection is one named, ordered, paged list of content items. Item order
// is the rank order returned by the catalog service and must be preserved.
// A collection is replaced wholesale on re-fetch, never merged.
type Collection struct {
	Key          CollectionKey
	Page         int
	Items        []ContentItem
	TotalPages   int
	TotalResults int
}

// Title returns the display heading for this collection
func (c Collection) Title() string { return CollectionTitle(c.Key) }

// CategoryFilter narrows the browse view to one content kind
type CategoryFilter int

const (
	FilterAll CategoryFilter = iota
	FilterMovies
	FilterShows
)

// String returns the filter name as shown in the header
func (f CategoryFilter) String() string {
	switch f {
	case FilterMovies:
		return "Movies"
	case FilterShows:
		return "TV Shows"
	default:
		return "All"
	}
}

// Matches reports whether an item of the given kind passes this filter
func (f CategoryFilter) Matches(kind ContentKind) bool {
	switch f {
	case FilterMovies:
		return kind == KindMovie
	case FilterShows:
		return kind == KindShow
	default:
		return true
	}
}

// FilterItems returns the items that pass the filter, preserving relative
// order. For FilterAll the input slice is returned unchanged.
func (f CategoryFilter) FilterItems(items []ContentItem) []ContentItem {
	if f == FilterAll {
		return items
	}
	out := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if f.Matches(item.Kind) {
			out = append(out, item)
		}
	}
	return out
}
