package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// StockRepository defines the interface for the append-only stock
// ledger. There is deliberately no update or delete operation.
type StockRepository interface {
	Create(ctx context.Context, txn *entity.StockTransaction) error
	List(ctx context.Context, params *StockFilterParams) ([]entity.StockTransaction, int64, error)
	// Summary aggregates the ledger by (product, warehouse), summing IN
	// and OUT quantities separately. No netting is performed.
	Summary(ctx context.Context, productID, warehouseID *uuid.UUID) ([]entity.StockSummary, error)
}

// StockFilterParams contains filtering parameters for ledger queries
type StockFilterParams struct {
	Pagination  *pagination.PaginationParams
	ProductID   *uuid.UUID
	WarehouseID *uuid.UUID
}
