package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	domainRepo "github.com/sellardev/bizflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock ledger repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Create(ctx context.Context, txn *entity.StockTransaction) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Create(txn).Error
}

func (r *stockRepository) List(ctx context.Context, params *domainRepo.StockFilterParams) ([]entity.StockTransaction, int64, error) {
	var txns []entity.StockTransaction
	var total int64

	query := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.StockTransaction{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.WarehouseID != nil {
		query = query.Where("warehouse_id = ?", *params.WarehouseID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Product").Preload("Warehouse").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&txns).Error

	return txns, total, err
}

func (r *stockRepository) Summary(ctx context.Context, productID, warehouseID *uuid.UUID) ([]entity.StockSummary, error) {
	var rows []entity.StockSummary

	query := dbFrom(ctx, r.db).WithContext(ctx).
		Model(&entity.StockTransaction{}).
		Select(`product_id, warehouse_id,
			COALESCE(SUM(CASE WHEN direction = ? THEN quantity ELSE 0 END), 0) AS in_qty,
			COALESCE(SUM(CASE WHEN direction = ? THEN quantity ELSE 0 END), 0) AS out_qty`,
			enum.StockDirectionIn, enum.StockDirectionOut).
		Group("product_id, warehouse_id")

	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	if warehouseID != nil {
		query = query.Where("warehouse_id = ?", *warehouseID)
	}

	err := query.Scan(&rows).Error
	return rows, err
}
