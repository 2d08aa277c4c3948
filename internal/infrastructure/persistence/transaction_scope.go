package persistence

import (
	"context"

	"gorm.io/gorm"

	apporder "github.com/shop/backend/internal/application/order"
)

// GormTransactionScope implements the application TransactionScope
// using GORM transactions. Repository operations performed through the
// provided repositories commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new transaction scope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction. If the
// function returns an error the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apporder.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(apporder.TransactionalRepositories{
			Products: NewGormProductRepository(tx),
			Orders:   NewGormOrderRepository(tx),
			Carts:    NewGormCartRepository(tx),
		})
	})
}

var _ apporder.TransactionScope = (*GormTransactionScope)(nil)
