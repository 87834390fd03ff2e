package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sellardev/bizflow-api/internal/config"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info().Str("host", cfg.Host).Str("database", cfg.Name).Msg("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Actors
		&entity.User{},

		// Master data
		&entity.Customer{},
		&entity.Vendor{},
		&entity.Product{},
		&entity.Warehouse{},

		// Billing
		&entity.Invoice{},
		&entity.InvoiceItem{},

		// Orders
		&entity.SalesOrder{},
		&entity.SalesOrderItem{},
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderItem{},

		// CRM
		&entity.Lead{},
		&entity.Opportunity{},

		// Ledgers and system tables
		&entity.StockTransaction{},
		&entity.AuditLog{},
		&entity.SequenceCounter{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedAdminUser creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no user with that email exists.
func SeedAdminUser(db *gorm.DB, cfg *config.AdminConfig, log zerolog.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	var existing entity.User
	err := db.Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		log.Debug().Str("email", cfg.Email).Msg("admin user already exists")
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.User{
		Name:     "Admin",
		Email:    cfg.Email,
		Password: hashed,
		Role:     entity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Info().Str("email", cfg.Email).Msg("admin user created")
	return nil
}
