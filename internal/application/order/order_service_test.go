package order

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	orderdomain "github.com/shop/backend/internal/domain/order"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
)

type orderFixture struct {
	orders   *mockOrderRepository
	products *mockProductRepository
	svc      *OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:   new(mockOrderRepository),
		products: new(mockProductRepository),
	}
	scope := &NoOpTransactionScope{Repos: TransactionalRepositories{
		Products: f.products,
		Orders:   f.orders,
		Carts:    new(mockCartRepository),
	}}
	f.svc = NewOrderService(f.orders, scope, zap.NewNop())
	return f
}

func newPendingOrder(t *testing.T, userID uuid.UUID, lines ...orderdomain.OrderItem) *orderdomain.Order {
	t.Helper()
	if len(lines) == 0 {
		price, err := valueobject.NewMoneyUSDFromString("10.00")
		require.NoError(t, err)
		lines = []orderdomain.OrderItem{{
			BaseEntity:  shared.NewBaseEntity(),
			ProductID:   uuid.New(),
			ProductName: "Product A",
			Quantity:    3,
			UnitPrice:   price,
		}}
	}
	o, err := orderdomain.NewOrder(userID, lines, orderdomain.ShippingDetails{CustomerName: "Alice"})
	require.NoError(t, err)
	return o
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("owner can read own order", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, userID)
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		resp, err := f.svc.GetOrder(ctx, o.ID, userID, false)
		require.NoError(t, err)
		assert.Equal(t, o.ID, resp.ID)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, userID)
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.svc.GetOrder(ctx, o.ID, uuid.New(), false)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("admin can read any order", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, userID)
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.svc.GetOrder(ctx, o.ID, uuid.New(), true)
		assert.NoError(t, err)
	})
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates status with optimistic lock", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, uuid.New())
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		f.orders.On("SaveWithLock", ctx, o, 1).Return(nil)

		resp, err := f.svc.UpdateOrderStatus(ctx, o.ID, UpdateOrderStatusRequest{Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "CONFIRMED", resp.Status)
	})

	t.Run("rejects change on customer-cancelled order", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, uuid.New())
		require.NoError(t, o.CancelByCustomer())
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.svc.UpdateOrderStatus(ctx, o.ID, UpdateOrderStatusRequest{Status: "CONFIRMED"})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		f.orders.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		f := newOrderFixture()
		_, err := f.svc.UpdateOrderStatus(ctx, uuid.New(), UpdateOrderStatusRequest{Status: "TELEPORTED"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("propagates concurrency conflict", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, uuid.New())
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		f.orders.On("SaveWithLock", ctx, o, 1).Return(shared.ErrConcurrencyConflict)

		_, err := f.svc.UpdateOrderStatus(ctx, o.ID, UpdateOrderStatusRequest{Status: "CONFIRMED"})
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

func TestOrderService_UpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates payment label", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, uuid.New())
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		f.orders.On("SaveWithLock", ctx, o, 1).Return(nil)

		resp, err := f.svc.UpdatePaymentStatus(ctx, o.ID, UpdatePaymentStatusRequest{PaymentStatus: "paid"})
		require.NoError(t, err)
		assert.Equal(t, "PAID", resp.PaymentStatus)
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		f := newOrderFixture()
		_, err := f.svc.UpdatePaymentStatus(ctx, uuid.New(), UpdatePaymentStatusRequest{PaymentStatus: "MAYBE"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("cancels pending order and restores stock", func(t *testing.T) {
		f := newOrderFixture()

		product := newCheckoutProduct(t, "Product A", 10, 2)
		price, err := valueobject.NewMoneyUSDFromString("10.00")
		require.NoError(t, err)
		o := newPendingOrder(t, userID, orderdomain.OrderItem{
			BaseEntity:  shared.NewBaseEntity(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    3,
			UnitPrice:   price,
		})

		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		f.products.On("FindByIDForUpdate", ctx, product.ID).Return(product, nil)
		f.products.On("Save", ctx, product).Return(nil)
		f.orders.On("SaveWithLock", ctx, o, 1).Return(nil)

		resp, err := f.svc.CancelOrder(ctx, o.ID, userID)
		require.NoError(t, err)

		assert.Equal(t, "CUSTOMER_CANCELLED", resp.Status)
		assert.Equal(t, 5, product.StockQuantity)
	})

	t.Run("rejects cancellation of non-pending order", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, userID)
		require.NoError(t, o.UpdateStatus(orderdomain.StatusConfirmed))
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.svc.CancelOrder(ctx, o.ID, userID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		f.products.AssertNotCalled(t, "FindByIDForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("second cancellation fails and does not double-restore", func(t *testing.T) {
		f := newOrderFixture()

		product := newCheckoutProduct(t, "Product A", 10, 2)
		price, err := valueobject.NewMoneyUSDFromString("10.00")
		require.NoError(t, err)
		o := newPendingOrder(t, userID, orderdomain.OrderItem{
			BaseEntity:  shared.NewBaseEntity(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    3,
			UnitPrice:   price,
		})

		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)
		f.products.On("FindByIDForUpdate", ctx, product.ID).Return(product, nil)
		f.products.On("Save", ctx, product).Return(nil)
		f.orders.On("SaveWithLock", ctx, o, 1).Return(nil)

		_, err = f.svc.CancelOrder(ctx, o.ID, userID)
		require.NoError(t, err)
		require.Equal(t, 5, product.StockQuantity)

		_, err = f.svc.CancelOrder(ctx, o.ID, userID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		assert.Equal(t, 5, product.StockQuantity)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		f := newOrderFixture()
		o := newPendingOrder(t, userID)
		f.orders.On("FindByID", ctx, o.ID).Return(o, nil)

		_, err := f.svc.CancelOrder(ctx, o.ID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}
