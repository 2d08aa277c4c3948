package order

import (
	"time"

	"github.com/google/uuid"

	orderdomain "github.com/shop/backend/internal/domain/order"
)

// CheckoutItemRequest is one purchased line in a checkout request
type CheckoutItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest is the input for placing an order
type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items" binding:"required,dive"`
	CustomerName    string                `json:"customer_name" binding:"required"`
	CustomerEmail   string                `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                `json:"customer_phone"`
	ShippingAddress string                `json:"shipping_address" binding:"required"`
	PaymentMethod   string                `json:"payment_method" binding:"required"`
}

// UpdateOrderStatusRequest is the input for an admin status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePaymentStatusRequest is the input for a payment label change
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// OrderItemResponse is the API representation of an order line
type OrderItemResponse struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductImageURL string    `json:"product_image_url"`
	Quantity        int       `json:"quantity"`
	UnitPrice       string    `json:"unit_price"`
	Subtotal        string    `json:"subtotal"`
}

// OrderResponse is the API representation of an order
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	TotalPrice      string              `json:"total_price"`
	OrderDate       time.Time           `json:"order_date"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone"`
	ShippingAddress string              `json:"shipping_address"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"payment_method"`
	PaymentStatus   string              `json:"payment_status"`
}

// ToOrderResponse maps an order aggregate to its API representation
func ToOrderResponse(o *orderdomain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, OrderItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductImageURL: item.ProductImageURL,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice.Amount().String(),
			Subtotal:        item.Subtotal.Amount().String(),
		})
	}
	return &OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		TotalPrice:      o.TotalPrice.Amount().String(),
		OrderDate:       o.OrderDate,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: o.ShippingAddress,
		Status:          o.Status.String(),
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus.String(),
	}
}

// ToOrderResponses maps a slice of orders
func ToOrderResponses(orders []orderdomain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, *ToOrderResponse(&orders[i]))
	}
	return out
}

// Page is a page of results with navigation metadata
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int   `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	CurrentPage   int   `json:"current_page"`
	PageSize      int   `json:"page_size"`
	HasNext       bool  `json:"has_next"`
	HasPrevious   bool  `json:"has_previous"`
}
