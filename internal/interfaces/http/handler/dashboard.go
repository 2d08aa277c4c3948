package handler

import (
	"github.com/gin-gonic/gin"

	dashboardapp "github.com/shop/backend/internal/application/dashboard"
)

// DashboardHandler handles the admin dashboard API endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboardapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *dashboardapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary handles GET /admin/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}

// RevenueByDay handles GET /admin/dashboard/revenue
func (h *DashboardHandler) RevenueByDay(c *gin.Context) {
	revenue, err := h.dashboardService.RevenueByDay(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, revenue)
}

// TopProducts handles GET /admin/dashboard/top-products
func (h *DashboardHandler) TopProducts(c *gin.Context) {
	products, err := h.dashboardService.TopProducts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// OrderStatusCounts handles GET /admin/dashboard/order-status
func (h *DashboardHandler) OrderStatusCounts(c *gin.Context) {
	counts, err := h.dashboardService.OrderStatusCounts(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, counts)
}

// RecentOrders handles GET /admin/dashboard/recent-orders
func (h *DashboardHandler) RecentOrders(c *gin.Context) {
	orders, err := h.dashboardService.RecentOrders(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, orders)
}
