package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/flixstream/flix/internal/domain"
)

// CatalogService mediates between the coordinator and the catalog client.
// It owns no collection state; the coordinator does.
type CatalogService struct {
	client domain.CatalogClient
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(client domain.CatalogClient, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		client: client,
		logger: logger,
	}
}

// FetchCollection loads the first page of one named collection
func (s *CatalogService) FetchCollection(ctx context.Context, key domain.CollectionKey) (domain.Collection, error) {
	collection, err := s.client.Listing(ctx, key, 1)
	if err != nil {
		s.logger.Warn("collection fetch failed", "collection", key, "error", err)
		return domain.Collection{}, err
	}
	s.logger.Debug("collection loaded", "collection", key, "items", len(collection.Items))
	return collection, nil
}

// Search issues one multi-type search against the catalog service.
// Whitespace-only queries are rejected by the coordinator before reaching
// here, so query is assumed non-empty.
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.ContentItem, error) {
	query = strings.TrimSpace(query)
	results, err := s.client.SearchMulti(ctx, query, 1)
	if err != nil {
		s.logger.Warn("search failed", "query", query, "error", err)
		return nil, err
	}
	s.logger.Debug("search complete", "query", query, "results", len(results))
	return results, nil
}
