package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixstream/flix/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, "test-key", "https://image.example.org/t/p", nil)
	return client, server
}

func TestListingTagsMovieKind(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 603, "title": "The Matrix", "release_date": "1999-03-31", "vote_average": 8.2},
				{"id": 604, "title": "The Matrix Reloaded", "release_date": "2003-05-15", "vote_average": 7.0}
			],
			"total_pages": 10,
			"total_results": 200
		}`))
	})

	collection, err := client.Listing(context.Background(), domain.CollectionPopularMovies, 1)
	require.NoError(t, err)

	assert.Equal(t, domain.CollectionPopularMovies, collection.Key)
	assert.Equal(t, 10, collection.TotalPages)
	require.Len(t, collection.Items, 2)
	assert.Equal(t, "The Matrix", collection.Items[0].Title)
	assert.Equal(t, domain.KindMovie, collection.Items[0].Kind)
	assert.Equal(t, domain.KindMovie, collection.Items[1].Kind)
}

func TestListingTagsShowKindFromEndpoint(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/popular", r.URL.Path)
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 1399, "name": "Game of Thrones", "first_air_date": "2011-04-17", "vote_average": 8.4}
			],
			"total_pages": 1,
			"total_results": 1
		}`))
	})

	collection, err := client.Listing(context.Background(), domain.CollectionPopularShows, 1)
	require.NoError(t, err)

	require.Len(t, collection.Items, 1)
	item := collection.Items[0]
	assert.Equal(t, domain.KindShow, item.Kind)
	assert.Equal(t, "Game of Thrones", item.Title, "shows take their title from the name field")
	assert.Equal(t, "2011-04-17", item.ReleaseDate)
}

func TestListingPassesPageParam(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		w.Write([]byte(`{"page": 3, "results": [], "total_pages": 5, "total_results": 100}`))
	})

	collection, err := client.Listing(context.Background(), domain.CollectionTopMovies, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, collection.Page)
}

func TestListingUnknownCollection(t *testing.T) {
	client := NewClient("http://unused.invalid", "k", "", nil)
	_, err := client.Listing(context.Background(), domain.CollectionKey("bogus"), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestSearchMultiKeepsOnlyMoviesAndShows(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)
		assert.Equal(t, "batman", r.URL.Query().Get("query"))
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 268, "media_type": "movie", "title": "Batman", "release_date": "1989-06-23"},
				{"id": 999, "media_type": "person", "name": "Adam West"},
				{"id": 2098, "media_type": "tv", "name": "Batman", "first_air_date": "1966-01-12"}
			],
			"total_pages": 1,
			"total_results": 3
		}`))
	})

	results, err := client.SearchMulti(context.Background(), "batman", 1)
	require.NoError(t, err)

	require.Len(t, results, 2, "person results are dropped")
	assert.Equal(t, domain.KindMovie, results[0].Kind)
	assert.Equal(t, domain.KindShow, results[1].Kind)
	assert.Equal(t, 268, results[0].ID)
	assert.Equal(t, 2098, results[1].ID)
}

func TestSearchMultiPreservesRelevanceOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 3, "media_type": "tv", "name": "C"},
				{"id": 1, "media_type": "movie", "title": "A"},
				{"id": 2, "media_type": "movie", "title": "B"}
			],
			"total_pages": 1,
			"total_results": 3
		}`))
	})

	results, err := client.SearchMulti(context.Background(), "x", 1)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{results[0].ID, results[1].ID, results[2].ID})
}

func TestUnauthorizedMapsToAuthFailed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status_code": 7, "status_message": "Invalid API key"}`))
	})

	_, err := client.Listing(context.Background(), domain.CollectionTrending, 1)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestServerErrorSurfacesStatusMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status_code": 24, "status_message": "Backend timed out"}`))
	})

	_, err := client.SearchMulti(context.Background(), "q", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Backend timed out")
}

func TestTransportFailureMapsToServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, "k", "", nil)
	_, err := client.Listing(context.Background(), domain.CollectionTrending, 1)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}

func TestMalformedBodyIsAParseError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": `))
	})

	_, err := client.Listing(context.Background(), domain.CollectionNowPlaying, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
