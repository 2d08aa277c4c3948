package order

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	orderdomain "github.com/shop/backend/internal/domain/order"
	"github.com/shop/backend/internal/domain/shared"
)

// OrderService handles order lifecycle and query use cases
type OrderService struct {
	orders orderdomain.OrderRepository
	tx     TransactionScope
	engine *QueryEngine
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(orders orderdomain.OrderRepository, tx TransactionScope, logger *zap.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		tx:     tx,
		engine: NewQueryEngine(),
		logger: logger,
	}
}

// GetOrder returns a single order. Non-admin callers can only read
// their own orders.
func (s *OrderService) GetOrder(ctx context.Context, orderID, userID uuid.UUID, isAdmin bool) (*OrderResponse, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && !o.IsOwnedBy(userID) {
		return nil, shared.ErrForbidden
	}
	return ToOrderResponse(o), nil
}

// ListOrders returns the admin-wide order view
func (s *OrderService) ListOrders(ctx context.Context, q AdminListQuery) (Page[OrderResponse], error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return Page[OrderResponse]{}, err
	}
	return s.engine.ListAdmin(orders, q), nil
}

// ListUserOrders returns the calling user's orders
func (s *OrderService) ListUserOrders(ctx context.Context, userID uuid.UUID, q UserListQuery) (Page[OrderResponse], error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return Page[OrderResponse]{}, err
	}
	return s.engine.ListForUser(orders, q), nil
}

// UpdateOrderStatus applies an administrative status change with
// optimistic locking on the order version.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	newStatus := orderdomain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if !newStatus.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid order status: "+req.Status)
	}

	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	expectedVersion := o.Version

	if err := o.UpdateStatus(newStatus); err != nil {
		return nil, err
	}
	if err := s.orders.SaveWithLock(ctx, o, expectedVersion); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", newStatus.String()))

	return ToOrderResponse(o), nil
}

// UpdatePaymentStatus sets the order's payment label
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, req UpdatePaymentStatusRequest) (*OrderResponse, error) {
	newStatus := orderdomain.PaymentStatus(strings.ToUpper(strings.TrimSpace(req.PaymentStatus)))
	if !newStatus.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid payment status: "+req.PaymentStatus)
	}

	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	expectedVersion := o.Version

	if err := o.UpdatePaymentStatus(newStatus); err != nil {
		return nil, err
	}
	if err := s.orders.SaveWithLock(ctx, o, expectedVersion); err != nil {
		return nil, err
	}

	return ToOrderResponse(o), nil
}

// CancelOrder cancels a pending order on behalf of its owner and
// restores the reserved stock. The status re-check, the stock restore
// and the status write happen in one transaction.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID uuid.UUID) (*OrderResponse, error) {
	var cancelled *orderdomain.Order
	err := s.tx.Execute(ctx, func(repos TransactionalRepositories) error {
		o, err := repos.Orders.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if !o.IsOwnedBy(userID) {
			return shared.ErrForbidden
		}
		expectedVersion := o.Version

		if err := o.CancelByCustomer(); err != nil {
			return err
		}

		for i := range o.Items {
			item := &o.Items[i]
			product, err := repos.Products.FindByIDForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if err := product.IncreaseStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.Products.Save(ctx, product); err != nil {
				return err
			}
		}

		if err := repos.Orders.SaveWithLock(ctx, o, expectedVersion); err != nil {
			return err
		}
		cancelled = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order cancelled by customer",
		zap.String("order_id", orderID.String()),
		zap.String("user_id", userID.String()))

	return ToOrderResponse(cancelled), nil
}
