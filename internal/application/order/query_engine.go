package order

import (
	"sort"
	"strings"
	"time"

	orderdomain "github.com/shop/backend/internal/domain/order"
)

// Sort field names recognized by the query engine
const (
	SortByOrderDate    = "orderDate"
	SortByCustomerName = "customerName"
	SortByStatus       = "status"
	SortByTotalPrice   = "totalPrice"
	SortByID           = "id"
)

const dateLayout = "2006-01-02"

// AdminListQuery filters the admin-wide order view. Keyword takes
// precedence over status; when neither is set, all orders match.
type AdminListQuery struct {
	Keyword string
	Status  string
	Sort    string
	Page    int
	Size    int
}

// UserListQuery filters a single user's orders. All set filters are
// AND-combined; malformed values are ignored rather than rejected.
type UserListQuery struct {
	Status    string
	StartDate string
	EndDate   string
	Sort      string
	Page      int
	Size      int
}

// QueryEngine filters, sorts and paginates order collections in memory
type QueryEngine struct{}

// NewQueryEngine creates a query engine
func NewQueryEngine() *QueryEngine {
	return &QueryEngine{}
}

// ListAdmin applies the admin filter chain: keyword search if a keyword
// is given, otherwise status filter, otherwise all orders. An
// unparseable status yields an empty result set.
func (e *QueryEngine) ListAdmin(orders []orderdomain.Order, q AdminListQuery) Page[OrderResponse] {
	var filtered []orderdomain.Order

	switch {
	case strings.TrimSpace(q.Keyword) != "":
		filtered = filterByKeyword(orders, q.Keyword)
	case strings.TrimSpace(q.Status) != "":
		status, ok := parseStatus(q.Status)
		if !ok {
			filtered = []orderdomain.Order{}
		} else {
			filtered = filterByStatus(orders, status)
		}
	default:
		filtered = orders
	}

	sortOrders(filtered, q.Sort)
	return paginate(filtered, q.Page, q.Size)
}

// ListForUser applies the per-user filter chain. Status and date
// filters are AND-combined; an unparseable status or malformed date is
// silently ignored.
func (e *QueryEngine) ListForUser(orders []orderdomain.Order, q UserListQuery) Page[OrderResponse] {
	filtered := orders

	if strings.TrimSpace(q.Status) != "" {
		if status, ok := parseStatus(q.Status); ok {
			filtered = filterByStatus(filtered, status)
		}
	}
	// calendar dates compared as yyyy-mm-dd strings, which order
	// correctly and sidestep timezone-of-midnight issues
	if _, err := time.Parse(dateLayout, q.StartDate); err == nil {
		filtered = filterFunc(filtered, func(o *orderdomain.Order) bool {
			return o.OrderDate.Format(dateLayout) >= q.StartDate
		})
	}
	if _, err := time.Parse(dateLayout, q.EndDate); err == nil {
		filtered = filterFunc(filtered, func(o *orderdomain.Order) bool {
			return o.OrderDate.Format(dateLayout) <= q.EndDate
		})
	}

	sortOrders(filtered, q.Sort)
	return paginate(filtered, q.Page, q.Size)
}

func parseStatus(s string) (orderdomain.OrderStatus, bool) {
	status := orderdomain.OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	return status, status.IsValid()
}

func filterByStatus(orders []orderdomain.Order, status orderdomain.OrderStatus) []orderdomain.Order {
	return filterFunc(orders, func(o *orderdomain.Order) bool {
		return o.Status == status
	})
}

// filterByKeyword matches case-insensitively against customer name,
// email, phone and the order id string.
func filterByKeyword(orders []orderdomain.Order, keyword string) []orderdomain.Order {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	return filterFunc(orders, func(o *orderdomain.Order) bool {
		return strings.Contains(strings.ToLower(o.CustomerName), needle) ||
			strings.Contains(strings.ToLower(o.CustomerEmail), needle) ||
			strings.Contains(strings.ToLower(o.CustomerPhone), needle) ||
			strings.Contains(strings.ToLower(o.ID.String()), needle)
	})
}

func filterFunc(orders []orderdomain.Order, keep func(*orderdomain.Order) bool) []orderdomain.Order {
	out := make([]orderdomain.Order, 0, len(orders))
	for i := range orders {
		if keep(&orders[i]) {
			out = append(out, orders[i])
		}
	}
	return out
}

// sortOrders sorts in place by a "field,direction" pair. Unrecognized
// fields fall back to orderDate; direction defaults to descending.
func sortOrders(orders []orderdomain.Order, sortExpr string) {
	field := SortByOrderDate
	ascending := false

	parts := strings.Split(sortExpr, ",")
	if len(parts) > 0 {
		switch strings.TrimSpace(parts[0]) {
		case SortByCustomerName, SortByStatus, SortByTotalPrice, SortByID:
			field = strings.TrimSpace(parts[0])
		}
	}
	if len(parts) > 1 && strings.EqualFold(strings.TrimSpace(parts[1]), "asc") {
		ascending = true
	}

	less := func(a, b *orderdomain.Order) bool {
		switch field {
		case SortByCustomerName:
			return strings.ToLower(a.CustomerName) < strings.ToLower(b.CustomerName)
		case SortByStatus:
			return a.Status < b.Status
		case SortByTotalPrice:
			return a.TotalPrice.Amount().LessThan(b.TotalPrice.Amount())
		case SortByID:
			return a.ID.String() < b.ID.String()
		default:
			return a.OrderDate.Before(b.OrderDate)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if ascending {
			return less(&orders[i], &orders[j])
		}
		return less(&orders[j], &orders[i])
	})
}

// paginate slices a zero-based page out of the sorted collection. A
// page start past the end yields empty content, not an error.
func paginate(orders []orderdomain.Order, page, size int) Page[OrderResponse] {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	total := len(orders)
	totalPages := total / size
	if total%size > 0 {
		totalPages++
	}

	start := page * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[OrderResponse]{
		Content:       ToOrderResponses(orders[start:end]),
		TotalElements: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		PageSize:      size,
		HasNext:       page < totalPages-1,
		HasPrevious:   page > 0,
	}
}
