package catalog

import "github.com/flixstream/flix/internal/domain"

// mapItem converts a wire result into a domain item with the kind tagged
// from the endpoint context that produced it.
func mapItem(dto resultDTO, kind domain.ContentKind) domain.ContentItem {
	item := domain.ContentItem{
		ID:           dto.ID,
		Kind:         kind,
		Overview:     dto.Overview,
		PosterPath:   dto.PosterPath,
		BackdropPath: dto.BackdropPath,
		Rating:       dto.VoteAverage,
		VoteCount:    dto.VoteCount,
		Popularity:   dto.Popularity,
		Language:     dto.Language,
		GenreIDs:     dto.GenreIDs,
	}
	switch kind {
	case domain.KindShow:
		item.Title = dto.Name
		item.ReleaseDate = dto.FirstAirDate
	default:
		item.Title = dto.Title
		item.ReleaseDate = dto.ReleaseDate
	}
	return item
}

// mapListing converts a listing page where every result is the given kind
func mapListing(resp pagedResponse, kind domain.ContentKind, key domain.CollectionKey) domain.Collection {
	items := make([]domain.ContentItem, 0, len(resp.Results))
	for _, dto := range resp.Results {
		items = append(items, mapItem(dto, kind))
	}
	return domain.Collection{
		Key:          key,
		Page:         resp.Page,
		Items:        items,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
	}
}

// mapSearchResults converts multi-search results, keeping relevance order.
// The kind comes from the explicit media_type tag; results that are neither
// movie nor tv (people, or records missing the tag entirely) are dropped
// rather than guessed at.
func mapSearchResults(resp pagedResponse) []domain.ContentItem {
	items := make([]domain.ContentItem, 0, len(resp.Results))
	for _, dto := range resp.Results {
		switch dto.MediaType {
		case "movie":
			items = append(items, mapItem(dto, domain.KindMovie))
		case "tv":
			items = append(items, mapItem(dto, domain.KindShow))
		}
	}
	return items
}
