package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/service"
)

// stubClient is a canned-response CatalogClient for coordinator tests
type stubClient struct {
	collections map[domain.CollectionKey]domain.Collection
	searchHits  []domain.ContentItem
	searchErr   error
}

func (s *stubClient) Listing(_ context.Context, key domain.CollectionKey, _ int) (domain.Collection, error) {
	c, ok := s.collections[key]
	if !ok {
		return domain.Collection{}, domain.ErrServiceUnavailable
	}
	return c, nil
}

func (s *stubClient) SearchMulti(_ context.Context, _ string, _ int) ([]domain.ContentItem, error) {
	return s.searchHits, s.searchErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestModel(stub *stubClient) Model {
	if stub == nil {
		stub = &stubClient{}
	}
	logger := testLogger()
	m := NewModel(Options{
		Catalog: service.NewCatalogService(stub, logger),
		Logger:  logger,
	})
	m.width = 120
	m.height = 40
	return m
}

func update(t *testing.T, m Model, msg interface{}) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func movie(id int, title string) domain.ContentItem {
	return domain.ContentItem{ID: id, Kind: domain.KindMovie, Title: title}
}

func show(id int, title string) domain.ContentItem {
	return domain.ContentItem{ID: id, Kind: domain.KindShow, Title: title}
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel(nil)
	m = update(t, m, CollectionLoadedMsg{Collection: domain.Collection{
		Key:   domain.CollectionTrending,
		Items: []domain.ContentItem{movie(1, "Movie A"), show(2, "Show B"), movie(3, "Movie C")},
	}})
	m = update(t, m, CollectionLoadedMsg{Collection: domain.Collection{
		Key:   domain.CollectionPopularMovies,
		Items: []domain.ContentItem{movie(4, "Movie D"), movie(5, "Movie E")},
	}})
	m = update(t, m, CollectionLoadedMsg{Collection: domain.Collection{
		Key:   domain.CollectionPopularShows,
		Items: []domain.ContentItem{show(6, "Show F")},
	}})
	return m
}

func TestVisibleCollectionsKeepFixedOrder(t *testing.T) {
	m := loadedModel(t)

	rows := m.VisibleCollections()
	require.Len(t, rows, 3)
	assert.Equal(t, domain.CollectionTrending, rows[0].Key)
	assert.Equal(t, domain.CollectionPopularMovies, rows[1].Key)
	assert.Equal(t, domain.CollectionPopularShows, rows[2].Key)
}

func TestCategoryFilterPreservesItemOrder(t *testing.T) {
	m := loadedModel(t)
	m.category = domain.FilterMovies

	rows := m.VisibleCollections()
	require.Len(t, rows, 2, "the all-shows row disappears entirely")
	assert.Equal(t, []int{1, 3}, []int{rows[0].Items[0].ID, rows[0].Items[1].ID},
		"surviving items keep their relative order")
}

func TestCategoryShowsSuppressesMovieOnlyRows(t *testing.T) {
	m := loadedModel(t)
	m.category = domain.FilterShows

	rows := m.VisibleCollections()
	require.Len(t, rows, 2)
	assert.Equal(t, domain.CollectionTrending, rows[0].Key)
	require.Len(t, rows[0].Items, 1)
	assert.Equal(t, 2, rows[0].Items[0].ID)
	assert.Equal(t, domain.CollectionPopularShows, rows[1].Key)
}

func TestCategoryChangeAbandonsSearch(t *testing.T) {
	m := loadedModel(t)
	m.requestSearch("batman")
	require.True(t, m.search.loading)
	inFlightSeq := m.search.seq

	m.requestCategory(domain.FilterShows)

	assert.Empty(t, m.search.query)
	assert.False(t, m.search.loading)
	assert.Nil(t, m.search.results)

	// The response for the abandoned request arrives late and is discarded
	m = update(t, m, SearchResultsMsg{Seq: inFlightSeq, Query: "batman", Results: []domain.ContentItem{movie(9, "Batman")}})
	assert.Nil(t, m.search.results)
}

func TestSearchResetsCategory(t *testing.T) {
	m := loadedModel(t)
	m.category = domain.FilterShows

	cmd := m.requestSearch("batman")
	require.NotNil(t, cmd)
	assert.Equal(t, domain.FilterAll, m.category)
}

func TestLastIssuedSearchWins(t *testing.T) {
	m := newTestModel(nil)

	m.requestSearch("bat")
	firstSeq := m.search.seq
	m.requestSearch("batman")
	secondSeq := m.search.seq
	require.NotEqual(t, firstSeq, secondSeq)

	// The older response arrives after the newer request was issued
	m = update(t, m, SearchResultsMsg{Seq: firstSeq, Query: "bat", Results: []domain.ContentItem{movie(1, "Bat")}})
	assert.True(t, m.search.loading, "a stale response does not settle the session")
	assert.Nil(t, m.search.results)

	m = update(t, m, SearchResultsMsg{Seq: secondSeq, Query: "batman", Results: []domain.ContentItem{
		movie(268, "Batman"), show(2098, "Batman"),
	}})
	assert.False(t, m.search.loading)
	require.Len(t, m.search.results, 2)
	assert.Equal(t, 268, m.search.results[0].ID)
}

func TestStaleSearchFailureIsDiscarded(t *testing.T) {
	m := newTestModel(nil)

	m.requestSearch("first")
	firstSeq := m.search.seq
	m.requestSearch("second")

	m = update(t, m, SearchFailedMsg{Seq: firstSeq, Err: errors.New("boom")})
	assert.True(t, m.search.loading, "only the latest request's failure counts")
	assert.Empty(t, m.status)
}

func TestSearchFailureSurfacesOneError(t *testing.T) {
	m := newTestModel(nil)

	m.requestSearch("batman")
	m = update(t, m, SearchFailedMsg{Seq: m.search.seq, Err: domain.ErrServiceUnavailable})

	assert.False(t, m.search.loading)
	assert.Empty(t, m.search.results)
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.status, "Search failed")
}

func TestBlankQueryIssuesNoRequest(t *testing.T) {
	m := newTestModel(nil)

	cmd := m.requestSearch("")
	assert.Nil(t, cmd, "blank queries never reach the network")
	assert.False(t, m.search.loading)
	assert.Empty(t, m.search.query)
}

func TestCollectionFailureIsSilent(t *testing.T) {
	m := newTestModel(nil)

	m = update(t, m, CollectionFailedMsg{Key: domain.CollectionTrending, Err: domain.ErrServiceUnavailable})

	assert.Empty(t, m.status, "collection failures are never user-visible")
	assert.Empty(t, m.VisibleCollections())
}

func TestSelectWithoutPlaying(t *testing.T) {
	m := loadedModel(t)

	next, cmd := m.selectItem(movie(603, "The Matrix"))
	m = next.(Model)
	require.NotNil(t, m.Selected())
	assert.False(t, m.player.IsOpen(), "selecting alone never opens the player")
	assert.Contains(t, m.status, "The Matrix")
	assert.NotNil(t, cmd, "the notification is scheduled to clear")
}

func TestPlayThenCloseClearsSelectionAndPlayer(t *testing.T) {
	m := loadedModel(t)

	next, cmd := m.playItem(movie(603, "The Matrix"))
	m = next.(Model)
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.True(t, m.player.IsOpen())

	next, _ = m.closePlayer()
	m = next.(Model)
	assert.Nil(t, m.Selected(), "selection and player clear together")
	assert.False(t, m.player.IsOpen())
}

func TestSearchLoadingFlagRoundTrip(t *testing.T) {
	m := newTestModel(nil)

	m.requestSearch("batman")
	assert.True(t, m.SearchLoading())
	assert.Equal(t, "batman", m.SearchQuery())

	m = update(t, m, SearchResultsMsg{Seq: m.search.seq, Query: "batman", Results: []domain.ContentItem{
		movie(268, "Batman"), movie(272, "Batman Begins"),
	}})
	assert.False(t, m.SearchLoading())
	assert.Len(t, m.SearchResults(), 2)
}

func TestCollectionLoadFeedsQuickFilter(t *testing.T) {
	m := loadedModel(t)

	results := m.filterSvc.Filter("movie d")
	require.NotEmpty(t, results)
	assert.Equal(t, 4, results[0].Item.ID)
}

func TestAdminUnavailableWithoutDatabase(t *testing.T) {
	m := newTestModel(nil)

	next, cmd := m.openAdmin()
	m = next.(Model)
	assert.NotEqual(t, ViewAdmin, m.view)
	assert.True(t, m.statusIsError)
	assert.NotNil(t, cmd, "the status message is scheduled to clear")
}

func TestStatusClears(t *testing.T) {
	m := newTestModel(nil)
	m, _ = m.setStatus("hello", false)
	require.Equal(t, "hello", m.status)

	m = update(t, m, ClearStatusMsg{})
	assert.Empty(t, m.status)
}
