package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nexhr/hr-panel-go/internal/domain/catalog"
)

type CatalogServiceImpl struct {
	catalog.CatalogRepository
}

func NewCatalogService(catalogRepo catalog.CatalogRepository) catalog.CatalogService {
	return &CatalogServiceImpl{
		CatalogRepository: catalogRepo,
	}
}

// Create implements catalog.CatalogService.
func (c *CatalogServiceImpl) Create(ctx context.Context, req catalog.CreateEntryRequest) (catalog.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.EntryResponse{}, err
	}

	entry := catalog.ServiceEntry{
		Title:     req.Title,
		Summary:   req.Summary,
		Icon:      catalog.ParseIcon(req.Icon),
		SortOrder: req.SortOrder,
	}

	created, err := c.CatalogRepository.Create(ctx, entry)
	if err != nil {
		return catalog.EntryResponse{}, fmt.Errorf("failed to create service entry: %w", err)
	}

	return mapEntryToResponse(created), nil
}

// Get implements catalog.CatalogService.
func (c *CatalogServiceImpl) Get(ctx context.Context, id string) (catalog.EntryResponse, error) {
	entry, err := c.getEntry(ctx, id)
	if err != nil {
		return catalog.EntryResponse{}, err
	}
	return mapEntryToResponse(entry), nil
}

// List implements catalog.CatalogService.
func (c *CatalogServiceImpl) List(ctx context.Context) (catalog.ListEntriesResponse, error) {
	entries, err := c.CatalogRepository.List(ctx)
	if err != nil {
		return catalog.ListEntriesResponse{}, fmt.Errorf("failed to list service entries: %w", err)
	}

	responses := make([]catalog.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, mapEntryToResponse(entry))
	}

	return catalog.ListEntriesResponse{Entries: responses}, nil
}

// Update implements catalog.CatalogService.
func (c *CatalogServiceImpl) Update(ctx context.Context, req catalog.UpdateEntryRequest) (catalog.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.EntryResponse{}, err
	}

	entry, err := c.getEntry(ctx, req.ID)
	if err != nil {
		return catalog.EntryResponse{}, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Summary != nil {
		entry.Summary = *req.Summary
	}
	if req.Icon != nil {
		entry.Icon = catalog.ParseIcon(*req.Icon)
	}
	if req.SortOrder != nil {
		entry.SortOrder = *req.SortOrder
	}

	if err := c.CatalogRepository.Update(ctx, entry); err != nil {
		return catalog.EntryResponse{}, fmt.Errorf("failed to update service entry: %w", err)
	}

	return mapEntryToResponse(entry), nil
}

// Delete implements catalog.CatalogService.
func (c *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := c.getEntry(ctx, id); err != nil {
		return err
	}
	if err := c.CatalogRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete service entry: %w", err)
	}
	return nil
}

func (c *CatalogServiceImpl) getEntry(ctx context.Context, id string) (catalog.ServiceEntry, error) {
	entry, err := c.CatalogRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return catalog.ServiceEntry{}, catalog.ErrEntryNotFound
		}
		return catalog.ServiceEntry{}, fmt.Errorf("failed to get service entry: %w", err)
	}
	return entry, nil
}

func mapEntryToResponse(entry catalog.ServiceEntry) catalog.EntryResponse {
	return catalog.EntryResponse{
		ID:        entry.ID,
		Title:     entry.Title,
		Summary:   entry.Summary,
		Icon:      string(entry.Icon),
		SortOrder: entry.SortOrder,
	}
}
