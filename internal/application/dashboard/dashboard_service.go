package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/identity"
	orderdomain "github.com/shop/backend/internal/domain/order"
	"github.com/shop/backend/internal/domain/shared"
)

const (
	revenueDays      = 7
	topProductLimit  = 5
	recentOrderLimit = 5
)

// SummaryResponse is the dashboard headline rollup
type SummaryResponse struct {
	TotalOrders   int64  `json:"total_orders"`
	TotalRevenue  string `json:"total_revenue"`
	TotalUsers    int64  `json:"total_users"`
	TotalProducts int64  `json:"total_products"`
}

// DailyRevenue is one calendar day's revenue
type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue string `json:"revenue"`
}

// TopProduct is one entry of the best-seller list
type TopProduct struct {
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	TotalQuantity int       `json:"total_quantity"`
}

// RecentOrder is a compact order row for the dashboard
type RecentOrder struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	TotalPrice   string    `json:"total_price"`
	Status       string    `json:"status"`
	OrderDate    time.Time `json:"order_date"`
}

// SummaryCache caches the headline rollup. Get returns (nil, nil) on a
// miss; cache failures are treated as misses by the service.
type SummaryCache interface {
	GetSummary(ctx context.Context) (*SummaryResponse, error)
	SetSummary(ctx context.Context, summary *SummaryResponse) error
}

// DashboardService computes read-only rollups over the order data.
// All aggregation happens in memory over the fetched order set.
type DashboardService struct {
	orders   orderdomain.OrderRepository
	products catalog.ProductRepository
	users    identity.UserRepository
	cache    SummaryCache
	logger   *zap.Logger
}

// NewDashboardService creates a new dashboard service. cache may be nil.
func NewDashboardService(
	orders orderdomain.OrderRepository,
	products catalog.ProductRepository,
	users identity.UserRepository,
	cache SummaryCache,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		orders:   orders,
		products: products,
		users:    users,
		cache:    cache,
		logger:   logger,
	}
}

// Summary returns order count, revenue, user count and product count.
// Revenue only counts DELIVERED and CONFIRMED orders.
func (s *DashboardService) Summary(ctx context.Context) (*SummaryResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSummary(ctx); err != nil {
			s.logger.Warn("summary cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for i := range orders {
		if orders[i].CountsTowardRevenue() {
			revenue = revenue.Add(orders[i].TotalPrice.Amount())
		}
	}

	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := s.products.Count(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	summary := &SummaryResponse{
		TotalOrders:   int64(len(orders)),
		TotalRevenue:  revenue.String(),
		TotalUsers:    userCount,
		TotalProducts: productCount,
	}

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, summary); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}

// RevenueByDay returns per-day revenue for the last revenueDays
// calendar days, oldest first. Days without revenue are present with a
// zero sum. The same status filter as Summary applies.
func (s *DashboardService) RevenueByDay(ctx context.Context) ([]DailyRevenue, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]decimal.Decimal, revenueDays)
	today := time.Now()
	days := make([]string, 0, revenueDays)
	for i := revenueDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		days = append(days, day)
		buckets[day] = decimal.Zero
	}

	for i := range orders {
		o := &orders[i]
		if !o.CountsTowardRevenue() {
			continue
		}
		day := o.OrderDate.Format("2006-01-02")
		if sum, ok := buckets[day]; ok {
			buckets[day] = sum.Add(o.TotalPrice.Amount())
		}
	}

	out := make([]DailyRevenue, 0, revenueDays)
	for _, day := range days {
		out = append(out, DailyRevenue{Date: day, Revenue: buckets[day].String()})
	}
	return out, nil
}

// TopProducts returns the best sellers by total ordered quantity
func (s *DashboardService) TopProducts(ctx context.Context) ([]TopProduct, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	type acc struct {
		name     string
		quantity int
	}
	byProduct := make(map[uuid.UUID]*acc)
	for i := range orders {
		for j := range orders[i].Items {
			item := &orders[i].Items[j]
			if a, ok := byProduct[item.ProductID]; ok {
				a.quantity += item.Quantity
			} else {
				byProduct[item.ProductID] = &acc{name: item.ProductName, quantity: item.Quantity}
			}
		}
	}

	top := make([]TopProduct, 0, len(byProduct))
	for id, a := range byProduct {
		top = append(top, TopProduct{ProductID: id, ProductName: a.name, TotalQuantity: a.quantity})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].TotalQuantity != top[j].TotalQuantity {
			return top[i].TotalQuantity > top[j].TotalQuantity
		}
		return top[i].ProductName < top[j].ProductName
	})

	if len(top) > topProductLimit {
		top = top[:topProductLimit]
	}
	return top, nil
}

// OrderStatusCounts returns a count per order status. Every status
// value is present even when its count is zero.
func (s *DashboardService) OrderStatusCounts(ctx context.Context) (map[string]int64, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(orderdomain.AllStatuses()))
	for _, status := range orderdomain.AllStatuses() {
		counts[status.String()] = 0
	}
	for i := range orders {
		counts[orders[i].Status.String()]++
	}
	return counts, nil
}

// RecentOrders returns the newest orders that carry a customer name
func (s *DashboardService) RecentOrders(ctx context.Context) ([]RecentOrder, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})

	out := make([]RecentOrder, 0, recentOrderLimit)
	for i := range orders {
		if orders[i].CustomerName == "" {
			continue
		}
		out = append(out, RecentOrder{
			ID:           orders[i].ID,
			CustomerName: orders[i].CustomerName,
			TotalPrice:   orders[i].TotalPrice.Amount().String(),
			Status:       orders[i].Status.String(),
			OrderDate:    orders[i].OrderDate,
		})
		if len(out) == recentOrderLimit {
			break
		}
	}
	return out, nil
}
