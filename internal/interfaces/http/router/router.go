package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shop/backend/internal/infrastructure/auth"
	"github.com/shop/backend/internal/infrastructure/config"
	"github.com/shop/backend/internal/infrastructure/logger"
	"github.com/shop/backend/internal/interfaces/http/handler"
	"github.com/shop/backend/internal/interfaces/http/middleware"
)

// Handlers bundles all HTTP handlers wired into the router
type Handlers struct {
	System    *handler.SystemHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Dashboard *handler.DashboardHandler
}

// New builds the gin engine with all middleware and routes registered
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	middleware.SetupValidator()

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")

	// Public catalog reads
	api.GET("/products", h.Product.List)
	api.GET("/products/:id", h.Product.Get)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		Logger:     log,
	}))
	{
		authed.GET("/cart", h.Cart.Get)
		authed.DELETE("/cart", h.Cart.Clear)
		authed.POST("/cart/items", h.Cart.AddItem)
		authed.PUT("/cart/items/:id", h.Cart.UpdateItem)
		authed.DELETE("/cart/items/:id", h.Cart.RemoveItem)

		authed.POST("/checkout", h.Order.Checkout)

		authed.GET("/orders", h.Order.ListMine)
		authed.GET("/orders/:id", h.Order.Get)
		authed.POST("/orders/:id/cancel", h.Order.Cancel)
	}

	// Admin routes
	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.POST("/products/:id/stock", h.Product.AddStock)
		admin.DELETE("/products/:id", h.Product.Delete)

		admin.GET("/orders", h.Order.ListAll)
		admin.PUT("/orders/:id/status", h.Order.UpdateStatus)
		admin.PUT("/orders/:id/payment-status", h.Order.UpdatePaymentStatus)

		admin.GET("/dashboard/summary", h.Dashboard.Summary)
		admin.GET("/dashboard/revenue", h.Dashboard.RevenueByDay)
		admin.GET("/dashboard/top-products", h.Dashboard.TopProducts)
		admin.GET("/dashboard/order-status", h.Dashboard.OrderStatusCounts)
		admin.GET("/dashboard/recent-orders", h.Dashboard.RecentOrders)
	}

	return engine
}
