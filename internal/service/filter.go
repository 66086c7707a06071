package service

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sahilm "github.com/sahilm/fuzzy"

	"github.com/flixstream/flix/internal/domain"
)

// FilterItem is one entry in the local quick-filter index
type FilterItem struct {
	Item       domain.ContentItem
	Collection domain.CollectionKey // row the item was fetched into
}

// FilterResult is a filter match with highlight metadata
type FilterResult struct {
	FilterItem
	MatchedIndexes []int
	Score          int // higher is better (sahilm/fuzzy convention)
}

// filterIndex implements sahilm/fuzzy.Source over pre-lowered titles
type filterIndex struct {
	items       []FilterItem
	lowerTitles []string
}

func (idx *filterIndex) String(i int) string { return idx.lowerTitles[i] }
func (idx *filterIndex) Len() int            { return len(idx.items) }

// FilterService provides an instant fuzzy filter over the titles of
// already-fetched collections. It is a browse-view navigation aid and is
// independent of the remote search session.
type FilterService struct {
	mu      sync.RWMutex
	index   *filterIndex
	indexed map[int]bool // content IDs already indexed
}

// NewFilterService creates an empty filter index
func NewFilterService() *FilterService {
	return &FilterService{
		index:   &filterIndex{},
		indexed: make(map[int]bool),
	}
}

// IndexCollection adds a fetched collection's items to the filter index.
// Items already indexed from another collection are skipped.
func (s *FilterService) IndexCollection(collection domain.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range collection.Items {
		if s.indexed[item.ID] {
			continue
		}
		s.indexed[item.ID] = true
		s.index.items = append(s.index.items, FilterItem{
			Item:       item,
			Collection: collection.Key,
		})
		s.index.lowerTitles = append(s.index.lowerTitles, strings.ToLower(item.Title))
	}
}

// Clear empties the filter index
func (s *FilterService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = &filterIndex{}
	s.indexed = make(map[int]bool)
}

// Filter returns indexed items matching the query, best matches first.
// An empty query returns nil.
func (s *FilterService) Filter(query string) []FilterResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := sahilm.FindFrom(query, s.index)
	if len(matches) > 0 {
		results := make([]FilterResult, len(matches))
		for i, match := range matches {
			results[i] = FilterResult{
				FilterItem:     s.index.items[match.Index],
				MatchedIndexes: match.MatchedIndexes,
				Score:          match.Score,
			}
		}
		return results
	}

	// Subsequence matching found nothing; fall back to edit-distance ranking
	// so small typos still land ("btaman" -> "Batman").
	ranks := fuzzy.RankFindNormalizedFold(query, s.index.lowerTitles)
	sort.Sort(ranks)

	results := make([]FilterResult, 0, len(ranks))
	for _, rank := range ranks {
		results = append(results, FilterResult{
			FilterItem: s.index.items[rank.OriginalIndex],
			Score:      -rank.Distance,
		})
	}
	return results
}
