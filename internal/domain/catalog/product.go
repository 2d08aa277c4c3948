package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
)

// Product represents a sellable item with an on-hand stock count.
// StockQuantity is the single source of truth for availability; it is
// only mutated through DecreaseStock and IncreaseStock.
type Product struct {
	shared.BaseAggregateRoot
	Name          string              `gorm:"type:varchar(255);not null;index"`
	Description   string              `gorm:"type:text"`
	Price         valueobject.Money   `gorm:"type:decimal(15,2);not null"`
	ImageURL      string              `gorm:"type:varchar(512)"`
	Category      string              `gorm:"type:varchar(100);index"`
	Brand         string              `gorm:"type:varchar(100)"`
	StockQuantity int                 `gorm:"not null;default:0"`
	Active        bool                `gorm:"not null;default:true"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(name, description string, price decimal.Decimal, stockQuantity int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Stock quantity cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Description:       description,
		Price:             valueobject.NewMoneyUSD(price),
		StockQuantity:     stockQuantity,
		Active:            true,
	}, nil
}

// IsAvailable returns true if the product can be purchased
func (p *Product) IsAvailable() bool {
	return p.Active
}

// HasStock returns true if at least quantity units are on hand
func (p *Product) HasStock(quantity int) bool {
	return p.StockQuantity >= quantity
}

// DecreaseStock removes quantity units from stock.
// Fails if quantity is not positive or exceeds the on-hand count;
// stock is never clamped below zero.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	if p.StockQuantity < quantity {
		return shared.NewInsufficientStockError(p.Name, p.StockQuantity, quantity)
	}
	p.StockQuantity -= quantity
	return nil
}

// IncreaseStock adds quantity units back to stock
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}
	p.StockQuantity += quantity
	return nil
}

// UpdateDetails updates the product's descriptive fields
func (p *Product) UpdateDetails(name, description, imageURL, category, brand string, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	p.Name = name
	p.Description = description
	p.ImageURL = imageURL
	p.Category = category
	p.Brand = brand
	p.Price = valueobject.NewMoneyUSD(price)
	return nil
}

// Activate makes the product purchasable
func (p *Product) Activate() {
	p.Active = true
}

// Deactivate removes the product from sale without deleting it
func (p *Product) Deactivate() {
	p.Active = false
}
