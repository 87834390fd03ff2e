package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sellardev/bizflow-api/internal/application/service"
	"github.com/sellardev/bizflow-api/internal/config"
	"github.com/sellardev/bizflow-api/internal/infrastructure/database"
	"github.com/sellardev/bizflow-api/internal/infrastructure/repository"
	"github.com/sellardev/bizflow-api/internal/presentation/http/handler"
	"github.com/sellardev/bizflow-api/internal/presentation/http/routes"
	"github.com/sellardev/bizflow-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed the bootstrap admin account
	if err := database.SeedAdminUser(db, &cfg.Admin, logger); err != nil {
		logger.Warn().Err(err).Msg("failed to seed admin user")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	productRepo := repository.NewProductRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	salesOrderRepo := repository.NewSalesOrderRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	stockRepo := repository.NewStockRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditRepo, logger)
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo, auditService)
	vendorService := service.NewVendorService(vendorRepo, auditService)
	productService := service.NewProductService(productRepo, auditService)
	warehouseService := service.NewWarehouseService(warehouseRepo, auditService)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo, sequenceRepo, txManager, auditService)
	salesOrderService := service.NewSalesOrderService(salesOrderRepo, productRepo, customerRepo, warehouseRepo, stockRepo, sequenceRepo, txManager, auditService)
	purchaseOrderService := service.NewPurchaseOrderService(purchaseOrderRepo, productRepo, vendorRepo, warehouseRepo, stockRepo, sequenceRepo, txManager, auditService)
	leadService := service.NewLeadService(leadRepo, opportunityRepo, txManager, auditService)
	opportunityService := service.NewOpportunityService(opportunityRepo, auditService)
	stockService := service.NewStockService(stockRepo, productRepo, warehouseRepo, auditService)
	dashboardService := service.NewDashboardService(customerRepo, productRepo, invoiceRepo, leadRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Customer:      handler.NewCustomerHandler(customerService),
		Vendor:        handler.NewVendorHandler(vendorService),
		Product:       handler.NewProductHandler(productService),
		Warehouse:     handler.NewWarehouseHandler(warehouseService),
		Invoice:       handler.NewInvoiceHandler(invoiceService),
		SalesOrder:    handler.NewSalesOrderHandler(salesOrderService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Lead:          handler.NewLeadHandler(leadService),
		Opportunity:   handler.NewOpportunityHandler(opportunityService),
		Stock:         handler.NewStockHandler(stockService),
		Audit:         handler.NewAuditHandler(auditService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = zerolog.New(os.Stdout)
	if cfg.App.Env == "development" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return out.Level(level).With().Timestamp().Logger()
}
