package order

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the persistence interface for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Order, error)
	FindAll(ctx context.Context) ([]Order, error)
	Save(ctx context.Context, o *Order) error
	// SaveWithLock persists the order using optimistic locking on the
	// version column. Returns CONCURRENCY_CONFLICT if the stored
	// version no longer matches.
	SaveWithLock(ctx context.Context, o *Order, expectedVersion int) error
	Count(ctx context.Context) (int64, error)
}
