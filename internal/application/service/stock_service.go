package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/apperror"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// StockService manages the append-only stock ledger. Order delivery and
// receipt write through their own services; this one covers manual
// adjustments and reads.
type StockService struct {
	stockRepo     repository.StockRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	audit         *AuditService
}

// NewStockService creates a new stock service
func NewStockService(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	audit *AuditService,
) *StockService {
	return &StockService{
		stockRepo:     stockRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		audit:         audit,
	}
}

// AdjustStockInput represents a manual stock movement
type AdjustStockInput struct {
	CreatedByID uuid.UUID
	ProductID   uuid.UUID
	WarehouseID uuid.UUID
	Quantity    int
	Direction   enum.StockDirection
	Reference   string
}

// AdjustStock appends a manual IN or OUT movement to the ledger
func (s *StockService) AdjustStock(ctx context.Context, input *AdjustStockInput) (*entity.StockTransaction, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewValidationError("Quantity must be greater than zero")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	warehouse, err := s.warehouseRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}

	txn := &entity.StockTransaction{
		ProductID:   input.ProductID,
		WarehouseID: input.WarehouseID,
		Quantity:    input.Quantity,
		Direction:   input.Direction,
		Reference:   input.Reference,
		CreatedByID: input.CreatedByID,
	}

	if err := s.stockRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.CreatedByID, AuditActionCreate, "stock_transaction", txn.ID, nil, txn)
	return txn, nil
}

// ListTransactions lists ledger rows with filtering
func (s *StockService) ListTransactions(ctx context.Context, params *repository.StockFilterParams) (*pagination.PaginatedResult[entity.StockTransaction], error) {
	txns, total, err := s.stockRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}

// GetSummary reports IN and OUT sums per (product, warehouse) pair. The
// two figures are returned separately; netting is left to the caller.
func (s *StockService) GetSummary(ctx context.Context, productID, warehouseID *uuid.UUID) ([]entity.StockSummary, error) {
	return s.stockRepo.Summary(ctx, productID, warehouseID)
}
