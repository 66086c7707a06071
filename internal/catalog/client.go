package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/flixstream/flix/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "Flix/1.0"
)

// Client implements domain.CatalogClient against the catalog service's
// HTTP API. Base URL, API key, and image CDN base are injected at
// construction; the client holds no mutable global state.
type Client struct {
	baseURL    string
	apiKey     string
	images     Images
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new catalog API client
func NewClient(baseURL, apiKey, imageBaseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		images:  NewImages(imageBaseURL),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Images returns the image URL helper configured for this client
func (c *Client) Images() Images { return c.images }

// doRequest performs an authenticated GET and returns the response body
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("catalog request failed", "path", path, "error", err)
		return nil, domain.ErrServiceUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrAuthFailed
	}
	if resp.StatusCode != http.StatusOK {
		var status statusResponse
		if json.Unmarshal(body, &status) == nil && status.StatusMessage != "" {
			return nil, fmt.Errorf("catalog error %d: %s", resp.StatusCode, status.StatusMessage)
		}
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// listingEndpoint maps a collection key to its path and item kind
func listingEndpoint(key domain.CollectionKey) (path string, kind domain.ContentKind, err error) {
	switch key {
	case domain.CollectionTrending:
		return "/trending/movie/day", domain.KindMovie, nil
	case domain.CollectionPopularMovies:
		return "/movie/popular", domain.KindMovie, nil
	case domain.CollectionPopularShows:
		return "/tv/popular", domain.KindShow, nil
	case domain.CollectionTopMovies:
		return "/movie/top_rated", domain.KindMovie, nil
	case domain.CollectionTopShows:
		return "/tv/top_rated", domain.KindShow, nil
	case domain.CollectionNowPlaying:
		return "/movie/now_playing", domain.KindMovie, nil
	default:
		return "", 0, fmt.Errorf("unknown collection %q", key)
	}
}

// Listing returns one page of the named collection. Item kind is tagged
// from the endpoint, so a trending row never needs to sniff payload fields.
func (c *Client) Listing(ctx context.Context, key domain.CollectionKey, page int) (domain.Collection, error) {
	path, kind, err := listingEndpoint(key)
	if err != nil {
		return domain.Collection{}, err
	}

	query := url.Values{}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}

	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return domain.Collection{}, err
	}

	var resp pagedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Warn("catalog parse error", "path", path, "error", err)
		return domain.Collection{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return mapListing(resp, kind, key), nil
}

// SearchMulti searches movies and shows for a free-text query. Results keep
// the service's relevance order; non-movie, non-tv results are dropped.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) ([]domain.ContentItem, error) {
	q := url.Values{}
	q.Set("query", query)
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}

	body, err := c.doRequest(ctx, "/search/multi", q)
	if err != nil {
		return nil, err
	}

	var resp pagedResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Warn("catalog parse error", "path", "/search/multi", "error", err)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return mapSearchResults(resp), nil
}
