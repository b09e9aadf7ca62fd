package catalog

import "context"

type CatalogService interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	Get(ctx context.Context, id string) (EntryResponse, error)
	List(ctx context.Context) (ListEntriesResponse, error)
	Update(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, id string) error
}
