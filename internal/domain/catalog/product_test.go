package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shop/backend/internal/domain/shared"
)

func TestNewProduct(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		price       decimal.Decimal
		stock       int
		wantErr     bool
	}{
		{
			name:        "valid product",
			productName: "Wireless Mouse",
			price:       decimal.NewFromFloat(29.99),
			stock:       50,
			wantErr:     false,
		},
		{
			name:        "empty name",
			productName: "  ",
			price:       decimal.NewFromInt(10),
			stock:       5,
			wantErr:     true,
		},
		{
			name:        "negative price",
			productName: "Keyboard",
			price:       decimal.NewFromInt(-1),
			stock:       5,
			wantErr:     true,
		},
		{
			name:        "negative stock",
			productName: "Keyboard",
			price:       decimal.NewFromInt(10),
			stock:       -1,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct(tt.productName, "desc", tt.price, tt.stock)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.productName, p.Name)
			assert.True(t, p.Active)
			assert.Equal(t, 1, p.Version)
		})
	}
}

func TestProduct_DecreaseStock(t *testing.T) {
	t.Run("decreases available stock", func(t *testing.T) {
		p, err := NewProduct("Monitor", "", decimal.NewFromInt(200), 10)
		require.NoError(t, err)

		require.NoError(t, p.DecreaseStock(3))
		assert.Equal(t, 7, p.StockQuantity)
	})

	t.Run("allows draining stock to zero", func(t *testing.T) {
		p, err := NewProduct("Monitor", "", decimal.NewFromInt(200), 4)
		require.NoError(t, err)

		require.NoError(t, p.DecreaseStock(4))
		assert.Equal(t, 0, p.StockQuantity)
	})

	t.Run("rejects oversell without clamping", func(t *testing.T) {
		p, err := NewProduct("Monitor", "", decimal.NewFromInt(200), 2)
		require.NoError(t, err)

		err = p.DecreaseStock(5)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INSUFFICIENT_STOCK", domainErr.Code)
		assert.Equal(t, 2, p.StockQuantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p, err := NewProduct("Monitor", "", decimal.NewFromInt(200), 2)
		require.NoError(t, err)

		assert.Error(t, p.DecreaseStock(0))
		assert.Error(t, p.DecreaseStock(-1))
	})
}

func TestProduct_IncreaseStock(t *testing.T) {
	p, err := NewProduct("Desk", "", decimal.NewFromInt(150), 1)
	require.NoError(t, err)

	require.NoError(t, p.IncreaseStock(9))
	assert.Equal(t, 10, p.StockQuantity)

	assert.Error(t, p.IncreaseStock(0))
}

func TestProduct_UpdateDetails(t *testing.T) {
	p, err := NewProduct("Lamp", "old", decimal.NewFromInt(20), 5)
	require.NoError(t, err)

	err = p.UpdateDetails("Desk Lamp", "new", "http://img", "Home", "Lumina", decimal.NewFromFloat(24.50))
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", p.Name)
	assert.Equal(t, "Home", p.Category)
	assert.Equal(t, "24.50 USD", p.Price.String())

	assert.Error(t, p.UpdateDetails("", "x", "", "", "", decimal.NewFromInt(1)))
}

func TestProduct_Availability(t *testing.T) {
	p, err := NewProduct("Chair", "", decimal.NewFromInt(80), 3)
	require.NoError(t, err)

	assert.True(t, p.IsAvailable())
	assert.True(t, p.HasStock(3))
	assert.False(t, p.HasStock(4))

	p.Deactivate()
	assert.False(t, p.IsAvailable())

	p.Activate()
	assert.True(t, p.IsAvailable())
}
