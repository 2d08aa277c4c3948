package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
)

// CartItem is a line inside a cart. Price is a snapshot of the product
// price taken when the line was created; it is never re-synced from the
// catalog afterwards.
type CartItem struct {
	shared.BaseEntity
	CartID          uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID         `gorm:"type:uuid;not null"`
	ProductName     string            `gorm:"type:varchar(255);not null"`
	ProductImageURL string            `gorm:"type:varchar(512)"`
	Quantity        int               `gorm:"not null"`
	Price           valueobject.Money `gorm:"type:decimal(15,2);not null"`
}

// TableName specifies the table name
func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal returns quantity times the snapshot price
func (i *CartItem) Subtotal() valueobject.Money {
	return i.Price.MultiplyByInt(int64(i.Quantity))
}

// Cart is the per-user shopping cart aggregate. TotalPrice is derived
// state, recomputed after every mutation.
type Cart struct {
	shared.BaseAggregateRoot
	UserID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex"`
	Items      []CartItem        `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TotalPrice valueobject.Money `gorm:"type:decimal(15,2);not null"`
}

// TableName specifies the table name
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates an empty cart for the given user
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Items:             []CartItem{},
		TotalPrice:        valueobject.ZeroUSD(),
	}
}

// FindItem returns the line for productID, or nil if absent
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByID returns the line with the given line id, or nil if absent
func (c *Cart) FindItemByID(itemID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// MergedQuantity returns the quantity the cart would hold for productID
// after adding quantity more units. Used to validate an add against
// stock before mutating the cart.
func (c *Cart) MergedQuantity(productID uuid.UUID, quantity int) int {
	if existing := c.FindItem(productID); existing != nil {
		return existing.Quantity + quantity
	}
	return quantity
}

// AddItem adds quantity units of a product to the cart. If a line for
// the same product already exists, quantities are merged and the
// original price snapshot is kept.
func (c *Cart) AddItem(productID uuid.UUID, productName, productImageURL string, price decimal.Decimal, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	if existing := c.FindItem(productID); existing != nil {
		existing.Quantity += quantity
	} else {
		c.Items = append(c.Items, CartItem{
			BaseEntity:      shared.NewBaseEntity(),
			CartID:          c.ID,
			ProductID:       productID,
			ProductName:     productName,
			ProductImageURL: productImageURL,
			Quantity:        quantity,
			Price:           valueobject.NewMoneyUSD(price),
		})
	}

	c.recalculateTotal()
	return nil
}

// UpdateItemQuantity sets the quantity of an existing line
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Quantity must be positive")
	}

	item := c.FindItemByID(itemID)
	if item == nil {
		return shared.NewDomainError("NOT_FOUND", "Cart item not found")
	}

	item.Quantity = quantity
	c.recalculateTotal()
	return nil
}

// RemoveItem deletes a line from the cart
func (c *Cart) RemoveItem(itemID uuid.UUID) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recalculateTotal()
			return nil
		}
	}
	return shared.NewDomainError("NOT_FOUND", "Cart item not found")
}

// Clear removes all lines from the cart
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.recalculateTotal()
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) recalculateTotal() {
	total := valueobject.ZeroUSD()
	for i := range c.Items {
		total = total.MustAdd(c.Items[i].Subtotal())
	}
	c.TotalPrice = total
}
