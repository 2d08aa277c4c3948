package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	cartdomain "github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/shared"
)

// CartService handles cart use cases. Stock is validated against the
// catalog on every mutation, but never reserved; reservation happens
// only at checkout.
type CartService struct {
	carts    cartdomain.CartRepository
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(carts cartdomain.CartRepository, products catalog.ProductRepository, logger *zap.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

// GetCart returns the user's cart, creating an empty one on first access
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	c, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToCartResponse(c), nil
}

// AddToCart adds a product to the user's cart. The quantity that would
// result after merging with an existing line is validated against the
// product's current stock.
func (s *CartService) AddToCart(ctx context.Context, userID uuid.UUID, req AddToCartRequest) (*CartResponse, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable() {
		return nil, shared.ErrProductInactive
	}

	c, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := c.MergedQuantity(product.ID, req.Quantity)
	if !product.HasStock(merged) {
		return nil, shared.NewInsufficientStockError(product.Name, product.StockQuantity, merged)
	}

	if err := c.AddItem(product.ID, product.Name, product.ImageURL, product.Price.Amount(), req.Quantity); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("item added to cart",
		zap.String("user_id", userID.String()),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", req.Quantity))

	return ToCartResponse(c), nil
}

// UpdateCartItem changes the quantity of an existing cart line. The new
// quantity is validated against the product's current stock.
func (s *CartService) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, req UpdateCartItemRequest) (*CartResponse, error) {
	c, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := c.FindItemByID(itemID)
	if item == nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Cart item not found")
	}

	product, err := s.products.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.HasStock(req.Quantity) {
		return nil, shared.NewInsufficientStockError(product.Name, product.StockQuantity, req.Quantity)
	}

	if err := c.UpdateItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	return ToCartResponse(c), nil
}

// RemoveCartItem deletes a line from the user's cart
func (s *CartService) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) (*CartResponse, error) {
	c, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := s.carts.DeleteItems(ctx, c.ID, itemIDs(c)); err != nil {
		return nil, err
	}
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}

	return ToCartResponse(c), nil
}

// ClearCart removes all lines from the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	c, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	c.Clear()
	if err := s.carts.DeleteItems(ctx, c.ID, nil); err != nil {
		return err
	}
	return s.carts.Save(ctx, c)
}

func (s *CartService) getOrCreate(ctx context.Context, userID uuid.UUID) (*cartdomain.Cart, error) {
	c, err := s.carts.FindByUserID(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	c = cartdomain.NewCart(userID)
	if err := s.carts.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func itemIDs(c *cartdomain.Cart) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for i := range c.Items {
		ids = append(ids, c.Items[i].ID)
	}
	return ids
}
