package order

import (
	"context"

	cartdomain "github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/catalog"
	orderdomain "github.com/shop/backend/internal/domain/order"
)

// TransactionalRepositories bundles the repositories that participate
// in a single database transaction.
type TransactionalRepositories struct {
	Products catalog.ProductRepository
	Orders   orderdomain.OrderRepository
	Carts    cartdomain.CartRepository
}

// TransactionScope executes a function within a database transaction.
// All repository operations performed through the provided repositories
// commit or roll back together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// NoOpTransactionScope runs the function against the given repositories
// without any transaction. Used in tests.
type NoOpTransactionScope struct {
	Repos TransactionalRepositories
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s.Repos)
}
