package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cartdomain "github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/shared"
)

// GormCartRepository implements cart.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new cart repository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByID finds a cart by ID with its items
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cartdomain.Cart, error) {
	var c cartdomain.Cart
	if err := r.db.WithContext(ctx).Preload("Items").First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Cart not found")
		}
		return nil, err
	}
	return &c, nil
}

// FindByUserID finds a user's cart with its items
func (r *GormCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*cartdomain.Cart, error) {
	var c cartdomain.Cart
	if err := r.db.WithContext(ctx).Preload("Items").First(&c, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Cart not found")
		}
		return nil, err
	}
	return &c, nil
}

// Save persists the cart and its items
func (r *GormCartRepository) Save(ctx context.Context, c *cartdomain.Cart) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(c).Error
}

// DeleteItems removes cart lines not present in keepItemIDs. An empty
// keep list removes all lines of the cart.
func (r *GormCartRepository) DeleteItems(ctx context.Context, cartID uuid.UUID, keepItemIDs []uuid.UUID) error {
	query := r.db.WithContext(ctx).Where("cart_id = ?", cartID)
	if len(keepItemIDs) > 0 {
		query = query.Where("id NOT IN ?", keepItemIDs)
	}
	return query.Delete(&cartdomain.CartItem{}).Error
}

var _ cartdomain.CartRepository = (*GormCartRepository)(nil)
