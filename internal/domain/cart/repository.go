package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the persistence interface for carts
type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	// DeleteItems removes cart lines that are no longer part of the
	// aggregate. Needed because gorm's association save does not delete
	// orphaned rows.
	DeleteItems(ctx context.Context, cartID uuid.UUID, keepItemIDs []uuid.UUID) error
}
