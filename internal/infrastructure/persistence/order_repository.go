package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	orderdomain "github.com/shop/backend/internal/domain/order"
	"github.com/shop/backend/internal/domain/shared"
)

// GormOrderRepository implements order.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID with its items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*orderdomain.Order, error) {
	var o orderdomain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Order not found")
		}
		return nil, err
	}
	return &o, nil
}

// FindByUserID returns all orders of a user, newest first
func (r *GormOrderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]orderdomain.Order, error) {
	var orders []orderdomain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// FindAll returns all orders, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]orderdomain.Order, error) {
	var orders []orderdomain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// Save persists the order and its items
func (r *GormOrderRepository) Save(ctx context.Context, o *orderdomain.Order) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(o).Error
}

// SaveWithLock updates the order's mutable fields guarded by the
// version column. A zero row count means another writer got there
// first and the caller must retry from a fresh read.
func (r *GormOrderRepository) SaveWithLock(ctx context.Context, o *orderdomain.Order, expectedVersion int) error {
	newVersion := expectedVersion + 1
	result := r.db.WithContext(ctx).
		Model(&orderdomain.Order{}).
		Where("id = ? AND version = ?", o.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":         o.Status,
			"payment_status": o.PaymentStatus,
			"version":        newVersion,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	o.Version = newVersion
	return nil
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&orderdomain.Order{}).Count(&count).Error
	return count, err
}

var _ orderdomain.OrderRepository = (*GormOrderRepository)(nil)
