package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/shop/backend/internal/domain/shared"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	shared.Repository[Product]
	// FindByIDForUpdate loads a product with a row-level lock.
	// Must be called inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]Product, error)
	FindActive(ctx context.Context, filter shared.Filter) ([]Product, error)
	// AdjustStock atomically adds delta to the product's stock quantity,
	// so a restock can never overwrite a concurrent checkout decrement.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error
}
