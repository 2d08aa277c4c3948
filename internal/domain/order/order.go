package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending           OrderStatus = "PENDING"
	StatusConfirmed         OrderStatus = "CONFIRMED"
	StatusProcessing        OrderStatus = "PROCESSING"
	StatusShipping          OrderStatus = "SHIPPING"
	StatusDelivered         OrderStatus = "DELIVERED"
	StatusCancelled         OrderStatus = "CANCELLED"
	StatusCustomerCancelled OrderStatus = "CUSTOMER_CANCELLED"
)

// AllStatuses lists every order status value
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusConfirmed,
		StatusProcessing,
		StatusShipping,
		StatusDelivered,
		StatusCancelled,
		StatusCustomerCancelled,
	}
}

// IsValid checks if the status is a known value
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipping,
		StatusDelivered, StatusCancelled, StatusCustomerCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s OrderStatus) String() string {
	return string(s)
}

// PaymentStatus tracks payment state as a label. It carries no
// transition constraints.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// IsValid checks if the payment status is a known value
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// String returns the string representation
func (s PaymentStatus) String() string {
	return string(s)
}

// OrderItem is an immutable snapshot of a cart line at checkout time
type OrderItem struct {
	shared.BaseEntity
	OrderID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID         `gorm:"type:uuid;not null"`
	ProductName     string            `gorm:"type:varchar(255);not null"`
	ProductImageURL string            `gorm:"type:varchar(512)"`
	Quantity        int               `gorm:"not null"`
	UnitPrice       valueobject.Money `gorm:"type:decimal(15,2);not null"`
	Subtotal        valueobject.Money `gorm:"type:decimal(15,2);not null"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// Order is the checkout result aggregate. Its lines and total are
// immutable after creation; only Status and PaymentStatus change.
type Order struct {
	shared.BaseAggregateRoot
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index"`
	Items           []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice      valueobject.Money `gorm:"type:decimal(15,2);not null"`
	OrderDate       time.Time         `gorm:"not null;index"`
	CustomerName    string            `gorm:"type:varchar(255)"`
	CustomerEmail   string            `gorm:"type:varchar(255)"`
	CustomerPhone   string            `gorm:"type:varchar(50)"`
	ShippingAddress string            `gorm:"type:text"`
	Status          OrderStatus       `gorm:"type:varchar(30);not null;index"`
	PaymentMethod   string            `gorm:"type:varchar(50)"`
	PaymentStatus   PaymentStatus     `gorm:"type:varchar(20);not null"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// ShippingDetails carries the customer-provided checkout metadata
type ShippingDetails struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	PaymentMethod   string
}

// NewOrder creates a PENDING order from immutable line snapshots.
// The total is the sum of line subtotals.
func NewOrder(userID uuid.UUID, items []OrderItem, details ShippingDetails) (*Order, error) {
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order must contain at least one item")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		OrderDate:         time.Now(),
		CustomerName:      details.CustomerName,
		CustomerEmail:     details.CustomerEmail,
		CustomerPhone:     details.CustomerPhone,
		ShippingAddress:   details.ShippingAddress,
		Status:            StatusPending,
		PaymentMethod:     details.PaymentMethod,
		PaymentStatus:     PaymentPending,
	}

	total := valueobject.ZeroUSD()
	for i := range items {
		items[i].OrderID = o.ID
		items[i].Subtotal = items[i].UnitPrice.MultiplyByInt(int64(items[i].Quantity))
		total = total.MustAdd(items[i].Subtotal)
	}
	o.Items = items
	o.TotalPrice = total

	return o, nil
}

// UpdateStatus applies an administrative status change. The only guard
// is that a customer-cancelled order is locked against further changes.
func (o *Order) UpdateStatus(newStatus OrderStatus) error {
	if !newStatus.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid order status: "+newStatus.String())
	}
	if o.Status == StatusCustomerCancelled {
		return shared.NewDomainError("INVALID_STATE", "Order was cancelled by the customer and can no longer be updated")
	}
	o.Status = newStatus
	return nil
}

// UpdatePaymentStatus sets the payment label. No transition constraints.
func (o *Order) UpdatePaymentStatus(newStatus PaymentStatus) error {
	if !newStatus.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Invalid payment status: "+newStatus.String())
	}
	o.PaymentStatus = newStatus
	return nil
}

// CancelByCustomer transitions the order to CUSTOMER_CANCELLED.
// Only permitted while the order is still PENDING.
func (o *Order) CancelByCustomer() error {
	if o.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending orders can be cancelled")
	}
	o.Status = StatusCustomerCancelled
	return nil
}

// IsOwnedBy returns true if the order belongs to the given user
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// CountsTowardRevenue reports whether the order's total contributes to
// revenue rollups. Only delivered and confirmed orders count.
func (o *Order) CountsTowardRevenue() bool {
	return o.Status == StatusDelivered || o.Status == StatusConfirmed
}
