// Package repository defines the storage interfaces consumed by the
// use case layer, together with the query and row types they exchange.
// Concrete implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"
	"time"

	"pandamarket/internal/common/pagination"
	"pandamarket/internal/domain/entity"
)

// ProductSummary is the trimmed row shape returned by product listings.
type ProductSummary struct {
	ID        int64
	Name      string
	Price     float64
	CreatedAt time.Time
}

// ProductQuery carries the filter and window of a product listing.
// Search matches name or description case-insensitively; the same
// predicate must drive both List and Count.
type ProductQuery struct {
	Search string
	Sort   pagination.Sort
	Offset int
	Limit  int
}

type ProductRepository interface {
	// Create persists a new product and fills ID and CreatedAt.
	Create(ctx context.Context, p *entity.Product) error
	// Get returns (nil, nil) when no product has the id.
	Get(ctx context.Context, id int64) (*entity.Product, error)
	// Exists reports whether a product row with the id is present.
	Exists(ctx context.Context, id int64) (bool, error)
	// List returns one page of summaries for the query window.
	List(ctx context.Context, q ProductQuery) ([]ProductSummary, error)
	// Count returns the number of products matching the same search
	// predicate List uses, ignoring the window.
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id int64) error
}
