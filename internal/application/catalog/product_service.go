package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogdomain "github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/shared"
)

// ProductService handles catalog management use cases
type ProductService struct {
	products catalogdomain.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(products catalogdomain.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger,
	}
}

// CreateProduct adds a new product to the catalog
func (s *ProductService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	p, err := catalogdomain.NewProduct(req.Name, req.Description, req.Price, req.StockQuantity)
	if err != nil {
		return nil, err
	}
	p.ImageURL = req.ImageURL
	p.Category = req.Category
	p.Brand = req.Brand

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.String("product_id", p.ID.String()),
		zap.String("name", p.Name))

	return ToProductResponse(p), nil
}

// GetProduct returns a single product
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// ListProducts returns a page of products. Inactive products are
// included only for admin callers.
func (s *ProductService) ListProducts(ctx context.Context, filter shared.Filter, includeInactive bool) (shared.Paginated[ProductResponse], error) {
	var (
		products []catalogdomain.Product
		err      error
	)
	if includeInactive {
		products, err = s.products.FindAll(ctx, filter)
	} else {
		products, err = s.products.FindActive(ctx, filter)
	}
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}

	return shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.PageSize), nil
}

// UpdateProduct updates a product's details
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := p.UpdateDetails(req.Name, req.Description, req.ImageURL, req.Category, req.Brand, req.Price); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			p.Activate()
		} else {
			p.Deactivate()
		}
	}

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// AddStock restocks a product via an atomic increment, so it cannot
// overwrite a checkout that holds the row lock concurrently.
func (s *ProductService) AddStock(ctx context.Context, id uuid.UUID, req AddStockRequest) (*ProductResponse, error) {
	if req.Quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Restock quantity must be positive")
	}

	if err := s.products.AdjustStock(ctx, id, req.Quantity); err != nil {
		return nil, err
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stock added",
		zap.String("product_id", p.ID.String()),
		zap.Int("quantity", req.Quantity),
		zap.Int("stock", p.StockQuantity))

	return ToProductResponse(p), nil
}

// DeleteProduct removes a product from the catalog
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.products.FindByID(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}
