package catalog

import "fmt"

// Image size tokens understood by the image CDN
const (
	PosterSize   = "w500"
	BackdropSize = "w1280"

	// PlaceholderAsset is served when the catalog carries no image path
	PlaceholderAsset = "/placeholder.svg"
)

// Images composes full image URLs from partial catalog paths
type Images struct {
	baseURL string
}

// NewImages creates an image URL helper for the given CDN base
// (e.g. "https://image.tmdb.org/t/p")
func NewImages(baseURL string) Images {
	return Images{baseURL: baseURL}
}

// PosterURL returns the full poster URL, or the placeholder when path is empty
func (i Images) PosterURL(path string) string {
	return i.url(path, PosterSize)
}

// BackdropURL returns the full backdrop URL, or the placeholder when path is empty
func (i Images) BackdropURL(path string) string {
	return i.url(path, BackdropSize)
}

func (i Images) url(path, size string) string {
	if path == "" {
		return PlaceholderAsset
	}
	return fmt.Sprintf("%s/%s%s", i.baseURL, size, path)
}
