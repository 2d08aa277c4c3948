package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	catalogdomain "github.com/shop/backend/internal/domain/catalog"
)

// CreateProductRequest is the input for creating a product
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	ImageURL      string          `json:"image_url"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	StockQuantity int             `json:"stock_quantity" binding:"gte=0"`
}

// UpdateProductRequest is the input for updating a product's details
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Active      *bool           `json:"active"`
}

// AddStockRequest is the input for restocking a product
type AddStockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ProductResponse is the API representation of a product
type ProductResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	ImageURL      string    `json:"image_url"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	StockQuantity int       `json:"stock_quantity"`
	Active        bool      `json:"active"`
}

// ToProductResponse maps a product to its API representation
func ToProductResponse(p *catalogdomain.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.Amount().String(),
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		Brand:         p.Brand,
		StockQuantity: p.StockQuantity,
		Active:        p.Active,
	}
}

// ToProductResponses maps a slice of products
func ToProductResponses(products []catalogdomain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *ToProductResponse(&products[i]))
	}
	return out
}
