package handler

import (
	"github.com/gin-gonic/gin"

	orderapp "github.com/shop/backend/internal/application/order"
)

// OrderHandler handles checkout and order API endpoints
type OrderHandler struct {
	BaseHandler
	checkoutService *orderapp.CheckoutService
	orderService    *orderapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(checkoutService *orderapp.CheckoutService, orderService *orderapp.OrderService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
	}
}

// adminListParams binds the admin order listing query string.
// Pages are zero-based.
type adminListParams struct {
	Keyword string `form:"keyword"`
	Status  string `form:"status"`
	Sort    string `form:"sort"`
	Page    int    `form:"page" binding:"omitempty,min=0"`
	Size    int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// userListParams binds a user's own order listing query string.
// Dates use the yyyy-mm-dd format; malformed values are ignored.
type userListParams struct {
	Status    string `form:"status"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Sort      string `form:"sort"`
	Page      int    `form:"page" binding:"omitempty,min=0"`
	Size      int    `form:"size" binding:"omitempty,min=1,max=100"`
}

// Checkout handles POST /checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req orderapp.CheckoutRequest
	if !h.bindJSON(c, &req) {
		return
	}

	order, err := h.checkoutService.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// Get handles GET /orders/:id. Admins can fetch any order,
// regular users only their own.
func (h *OrderHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := h.bindID(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), orderID, userID, isAdmin(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// ListMine handles GET /orders for the authenticated user
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var params userListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.orderService.ListUserOrders(c.Request.Context(), userID, orderapp.UserListQuery{
		Status:    params.Status,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Sort:      params.Sort,
		Page:      params.Page,
		Size:      params.Size,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, page)
}

// Cancel handles POST /orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, ok := h.bindID(c)
	if !ok {
		return
	}

	order, err := h.orderService.CancelOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// ListAll handles GET /admin/orders
func (h *OrderHandler) ListAll(c *gin.Context) {
	var params adminListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	page, err := h.orderService.ListOrders(c.Request.Context(), orderapp.AdminListQuery{
		Keyword: params.Keyword,
		Status:  params.Status,
		Sort:    params.Sort,
		Page:    params.Page,
		Size:    params.Size,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, page)
}

// UpdateStatus handles PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := h.bindID(c)
	if !ok {
		return
	}

	var req orderapp.UpdateOrderStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdatePaymentStatus handles PUT /admin/orders/:id/payment-status
func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	orderID, ok := h.bindID(c)
	if !ok {
		return
	}

	var req orderapp.UpdatePaymentStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdatePaymentStatus(c.Request.Context(), orderID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}
