package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shop/backend/internal/domain/identity"
	orderdomain "github.com/shop/backend/internal/domain/order"
	"github.com/shop/backend/internal/domain/shared"
)

// CheckoutService converts a set of purchase lines into an order.
// Stock is checked and decremented per line inside a single
// transaction, so the whole checkout commits or rolls back as one.
type CheckoutService struct {
	tx     TransactionScope
	users  identity.UserRepository
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(tx TransactionScope, users identity.UserRepository, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		tx:     tx,
		users:  users,
		logger: logger,
	}
}

// Checkout places an order for the given lines. Each line's product is
// loaded with a row lock, validated for availability and stock, and
// decremented. The user's cart is cleared on success.
func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var placed *orderdomain.Order
	err = s.tx.Execute(ctx, func(repos TransactionalRepositories) error {
		items := make([]orderdomain.OrderItem, 0, len(req.Items))
		for _, line := range req.Items {
			product, err := repos.Products.FindByIDForUpdate(ctx, line.ProductID)
			if err != nil {
				return err
			}
			if !product.IsAvailable() {
				return shared.ErrProductInactive
			}
			if err := product.DecreaseStock(line.Quantity); err != nil {
				return err
			}
			if err := repos.Products.Save(ctx, product); err != nil {
				return err
			}

			items = append(items, orderdomain.OrderItem{
				BaseEntity:      shared.NewBaseEntity(),
				ProductID:       product.ID,
				ProductName:     product.Name,
				ProductImageURL: product.ImageURL,
				Quantity:        line.Quantity,
				UnitPrice:       product.Price,
			})
		}

		o, err := orderdomain.NewOrder(user.ID, items, orderdomain.ShippingDetails{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
		})
		if err != nil {
			return err
		}

		if err := repos.Orders.Save(ctx, o); err != nil {
			return err
		}

		if err := s.clearCart(ctx, repos, user.ID); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", placed.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("line_count", len(placed.Items)),
		zap.String("total", placed.TotalPrice.String()))

	return ToOrderResponse(placed), nil
}

func (s *CheckoutService) clearCart(ctx context.Context, repos TransactionalRepositories, userID uuid.UUID) error {
	c, err := repos.Carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	c.Clear()
	if err := repos.Carts.DeleteItems(ctx, c.ID, nil); err != nil {
		return err
	}
	return repos.Carts.Save(ctx, c)
}
