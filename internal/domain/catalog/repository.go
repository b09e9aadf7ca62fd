package catalog

import "context"

type CatalogRepository interface {
	Create(ctx context.Context, entry ServiceEntry) (ServiceEntry, error)
	GetByID(ctx context.Context, id string) (ServiceEntry, error)
	List(ctx context.Context) ([]ServiceEntry, error)
	Update(ctx context.Context, entry ServiceEntry) error
	Delete(ctx context.Context, id string) error
}
