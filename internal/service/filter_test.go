package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flixstream/flix/internal/domain"
)

func indexedFilter() *FilterService {
	svc := NewFilterService()
	svc.IndexCollection(domain.Collection{
		Key: domain.CollectionTrending,
		Items: []domain.ContentItem{
			{ID: 1, Kind: domain.KindMovie, Title: "Batman Begins"},
			{ID: 2, Kind: domain.KindMovie, Title: "The Dark Knight"},
			{ID: 3, Kind: domain.KindShow, Title: "Breaking Bad"},
		},
	})
	svc.IndexCollection(domain.Collection{
		Key: domain.CollectionPopularShows,
		Items: []domain.ContentItem{
			{ID: 3, Kind: domain.KindShow, Title: "Breaking Bad"}, // duplicate
			{ID: 4, Kind: domain.KindShow, Title: "Better Call Saul"},
		},
	})
	return svc
}

func TestFilterMatchesSubsequence(t *testing.T) {
	svc := indexedFilter()

	results := svc.Filter("batman")
	require.NotEmpty(t, results)
	assert.Equal(t, "Batman Begins", results[0].Item.Title)
	assert.Equal(t, domain.CollectionTrending, results[0].Collection)
}

func TestFilterDeduplicatesAcrossCollections(t *testing.T) {
	svc := indexedFilter()

	results := svc.Filter("breaking bad")
	count := 0
	for _, r := range results {
		if r.Item.ID == 3 {
			count++
		}
	}
	assert.Equal(t, 1, count, "an item indexed from two collections appears once")
}

func TestFilterEmptyQueryReturnsNil(t *testing.T) {
	svc := indexedFilter()

	assert.Nil(t, svc.Filter(""))
	assert.Nil(t, svc.Filter("   "))
}

func TestFilterTypoFallback(t *testing.T) {
	svc := indexedFilter()

	// No subsequence match for the transposition, rank matching catches it
	results := svc.Filter("btaman begins")
	require.NotEmpty(t, results)
	assert.Equal(t, "Batman Begins", results[0].Item.Title)
}

func TestFilterNoMatches(t *testing.T) {
	svc := indexedFilter()

	assert.Empty(t, svc.Filter("zzzzqqqq"))
}

func TestFilterClear(t *testing.T) {
	svc := indexedFilter()
	svc.Clear()

	assert.Empty(t, svc.Filter("batman"))

	// Re-indexing after a clear works
	svc.IndexCollection(domain.Collection{
		Key:   domain.CollectionNowPlaying,
		Items: []domain.ContentItem{{ID: 9, Title: "Batman Returns"}},
	})
	results := svc.Filter("batman")
	require.NotEmpty(t, results)
	assert.Equal(t, 9, results[0].Item.ID)
}
