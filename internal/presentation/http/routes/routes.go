package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sellardev/bizflow-api/internal/config"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/presentation/http/handler"
	"github.com/sellardev/bizflow-api/internal/presentation/http/middleware"
	"github.com/sellardev/bizflow-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Customer      *handler.CustomerHandler
	Vendor        *handler.VendorHandler
	Product       *handler.ProductHandler
	Warehouse     *handler.WarehouseHandler
	Invoice       *handler.InvoiceHandler
	SalesOrder    *handler.SalesOrderHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Lead          *handler.LeadHandler
	Opportunity   *handler.OpportunityHandler
	Stock         *handler.StockHandler
	Audit         *handler.AuditHandler
	Dashboard     *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     zerolog.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.GetSummary)

	registerCustomerRoutes(protected, h)
	registerVendorRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerWarehouseRoutes(protected, h)
	registerInvoiceRoutes(protected, h)
	registerSalesOrderRoutes(protected, h)
	registerPurchaseOrderRoutes(protected, h)
	registerLeadRoutes(protected, h)
	registerOpportunityRoutes(protected, h)
	registerStockRoutes(protected, h)
	registerAuditRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerVendorRoutes(protected *gin.RouterGroup, h *Handlers) {
	vendors := protected.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.POST("", h.Vendor.Create)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerWarehouseRoutes(protected *gin.RouterGroup, h *Handlers) {
	warehouses := protected.Group("/warehouses")
	{
		warehouses.GET("", h.Warehouse.List)
		warehouses.POST("", h.Warehouse.Create)
		warehouses.GET("/:id", h.Warehouse.Get)
		warehouses.PUT("/:id", h.Warehouse.Update)
		warehouses.DELETE("/:id", h.Warehouse.Delete)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/payments", h.Invoice.RecordPayment)
		invoices.PUT("/:id/status", h.Invoice.UpdateStatus)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}
}

func registerSalesOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/sales-orders")
	{
		orders.GET("", h.SalesOrder.List)
		orders.POST("", h.SalesOrder.Create)
		orders.GET("/:id", h.SalesOrder.Get)
		orders.POST("/:id/approve", h.SalesOrder.Approve)
		orders.POST("/:id/deliver", h.SalesOrder.Deliver)
	}
}

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/purchase-orders")
	{
		orders.GET("", h.PurchaseOrder.List)
		orders.POST("", h.PurchaseOrder.Create)
		orders.GET("/:id", h.PurchaseOrder.Get)
		orders.POST("/:id/receive", h.PurchaseOrder.Receive)
	}
}

func registerLeadRoutes(protected *gin.RouterGroup, h *Handlers) {
	leads := protected.Group("/leads")
	{
		leads.GET("", h.Lead.List)
		leads.POST("", h.Lead.Create)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", h.Lead.Update)
		leads.DELETE("/:id", h.Lead.Delete)
		leads.POST("/:id/convert", h.Lead.Convert)
	}
}

func registerOpportunityRoutes(protected *gin.RouterGroup, h *Handlers) {
	opportunities := protected.Group("/opportunities")
	{
		opportunities.GET("", h.Opportunity.List)
		opportunities.GET("/:id", h.Opportunity.Get)
		opportunities.PUT("/:id", h.Opportunity.Update)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	{
		stock.GET("/transactions", h.Stock.List)
		stock.POST("/adjustments", h.Stock.Adjust)
		stock.GET("/summary", h.Stock.Summary)
	}
}

func registerAuditRoutes(protected *gin.RouterGroup, h *Handlers) {
	audit := protected.Group("/audit-logs")
	audit.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		audit.GET("", h.Audit.List)
	}
}
