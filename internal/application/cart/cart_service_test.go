package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartdomain "github.com/shop/backend/internal/domain/cart"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/shared"
)

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cartdomain.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.Cart), args.Error(1)
}

func (m *mockCartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*cartdomain.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.Cart), args.Error(1)
}

func (m *mockCartRepository) Save(ctx context.Context, c *cartdomain.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCartRepository) DeleteItems(ctx context.Context, cartID uuid.UUID, keepItemIDs []uuid.UUID) error {
	args := m.Called(ctx, cartID, keepItemIDs)
	return args.Error(0)
}

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, category, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) FindActive(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockProductRepository) Save(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *mockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestProduct(t *testing.T, name string, price int64, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", decimal.NewFromInt(price), stock)
	require.NoError(t, err)
	return p
}

func TestCartService_AddToCart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("adds item to existing cart", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		product := newTestProduct(t, "Mouse", 10, 5)
		existing := cartdomain.NewCart(userID)

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		carts.On("FindByUserID", ctx, userID).Return(existing, nil)
		carts.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil)

		resp, err := svc.AddToCart(ctx, userID, AddToCartRequest{ProductID: product.ID, Quantity: 3})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "30", resp.TotalPrice)
		carts.AssertExpectations(t)
	})

	t.Run("creates cart lazily on first add", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		product := newTestProduct(t, "Mouse", 10, 5)

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		carts.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)
		carts.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil)

		resp, err := svc.AddToCart(ctx, userID, AddToCartRequest{ProductID: product.ID, Quantity: 1})
		require.NoError(t, err)
		assert.Equal(t, userID, resp.UserID)
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		product := newTestProduct(t, "Mouse", 10, 5)
		product.Deactivate()
		products.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := svc.AddToCart(ctx, userID, AddToCartRequest{ProductID: product.ID, Quantity: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrProductInactive)
	})

	t.Run("validates merged quantity against stock", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		product := newTestProduct(t, "Mouse", 10, 5)
		existing := cartdomain.NewCart(userID)
		require.NoError(t, existing.AddItem(product.ID, product.Name, "", decimal.NewFromInt(10), 4))

		products.On("FindByID", ctx, product.ID).Return(product, nil)
		carts.On("FindByUserID", ctx, userID).Return(existing, nil)

		// 4 already in cart + 2 more exceeds stock of 5
		_, err := svc.AddToCart(ctx, userID, AddToCartRequest{ProductID: product.ID, Quantity: 2})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates product not found", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		productID := uuid.New()
		products.On("FindByID", ctx, productID).Return(nil, shared.ErrNotFound)

		_, err := svc.AddToCart(ctx, userID, AddToCartRequest{ProductID: productID, Quantity: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartService_UpdateCartItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("updates quantity within stock", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		product := newTestProduct(t, "Mouse", 10, 5)
		c := cartdomain.NewCart(userID)
		require.NoError(t, c.AddItem(product.ID, product.Name, "", decimal.NewFromInt(10), 1))
		itemID := c.Items[0].ID

		carts.On("FindByUserID", ctx, userID).Return(c, nil)
		products.On("FindByID", ctx, product.ID).Return(product, nil)
		carts.On("Save", ctx, c).Return(nil)

		resp, err := svc.UpdateCartItem(ctx, userID, itemID, UpdateCartItemRequest{Quantity: 5})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Items[0].Quantity)
	})

	t.Run("rejects quantity above stock", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		product := newTestProduct(t, "Mouse", 10, 5)
		c := cartdomain.NewCart(userID)
		require.NoError(t, c.AddItem(product.ID, product.Name, "", decimal.NewFromInt(10), 1))

		carts.On("FindByUserID", ctx, userID).Return(c, nil)
		products.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := svc.UpdateCartItem(ctx, userID, c.Items[0].ID, UpdateCartItemRequest{Quantity: 6})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})

	t.Run("rejects unknown line", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		c := cartdomain.NewCart(userID)
		carts.On("FindByUserID", ctx, userID).Return(c, nil)

		_, err := svc.UpdateCartItem(ctx, userID, uuid.New(), UpdateCartItemRequest{Quantity: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestCartService_RemoveCartItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	carts := new(mockCartRepository)
	products := new(mockProductRepository)
	svc := NewCartService(carts, products, zap.NewNop())

	c := cartdomain.NewCart(userID)
	require.NoError(t, c.AddItem(uuid.New(), "Mouse", "", decimal.NewFromInt(10), 1))
	require.NoError(t, c.AddItem(uuid.New(), "Keyboard", "", decimal.NewFromInt(50), 1))
	itemID := c.Items[0].ID

	carts.On("FindByUserID", ctx, userID).Return(c, nil)
	carts.On("DeleteItems", ctx, c.ID, mock.Anything).Return(nil)
	carts.On("Save", ctx, c).Return(nil)

	resp, err := svc.RemoveCartItem(ctx, userID, itemID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Keyboard", resp.Items[0].ProductName)
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("clears existing cart", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		c := cartdomain.NewCart(userID)
		require.NoError(t, c.AddItem(uuid.New(), "Mouse", "", decimal.NewFromInt(10), 1))

		carts.On("FindByUserID", ctx, userID).Return(c, nil)
		carts.On("DeleteItems", ctx, c.ID, []uuid.UUID(nil)).Return(nil)
		carts.On("Save", ctx, c).Return(nil)

		require.NoError(t, svc.ClearCart(ctx, userID))
		assert.True(t, c.IsEmpty())
	})

	t.Run("is a no-op when cart does not exist", func(t *testing.T) {
		carts := new(mockCartRepository)
		products := new(mockProductRepository)
		svc := NewCartService(carts, products, zap.NewNop())

		carts.On("FindByUserID", ctx, userID).Return(nil, shared.ErrNotFound)

		require.NoError(t, svc.ClearCart(ctx, userID))
	})
}

var _ cartdomain.CartRepository = (*mockCartRepository)(nil)
var _ catalog.ProductRepository = (*mockProductRepository)(nil)
