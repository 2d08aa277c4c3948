package cart

import (
	"github.com/google/uuid"

	cartdomain "github.com/shop/backend/internal/domain/cart"
)

// AddToCartRequest is the input for adding a product to a cart
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest is the input for changing a line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// CartItemResponse is the API representation of a cart line
type CartItemResponse struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductImageURL string    `json:"product_image_url"`
	Quantity        int       `json:"quantity"`
	Price           string    `json:"price"`
	Subtotal        string    `json:"subtotal"`
}

// CartResponse is the API representation of a cart
type CartResponse struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Items      []CartItemResponse `json:"items"`
	TotalPrice string             `json:"total_price"`
}

// ToCartResponse maps a cart aggregate to its API representation
func ToCartResponse(c *cartdomain.Cart) *CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for i := range c.Items {
		item := &c.Items[i]
		items = append(items, CartItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductImageURL: item.ProductImageURL,
			Quantity:        item.Quantity,
			Price:           item.Price.Amount().String(),
			Subtotal:        item.Subtotal().Amount().String(),
		})
	}
	return &CartResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Items:      items,
		TotalPrice: c.TotalPrice.Amount().String(),
	}
}
