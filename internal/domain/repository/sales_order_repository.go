package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// SalesOrderRepository defines the interface for sales order data operations
type SalesOrderRepository interface {
	// Create persists the order together with its line items.
	Create(ctx context.Context, order *entity.SalesOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SalesOrder, error)
	Update(ctx context.Context, order *entity.SalesOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SalesOrderFilterParams) ([]entity.SalesOrder, int64, error)
}

// SalesOrderFilterParams contains filtering parameters for sales order queries
type SalesOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.SalesOrderStatus
	CustomerID *uuid.UUID
}

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	// Create persists the order together with its line items.
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error)
}

// PurchaseOrderFilterParams contains filtering parameters for purchase order queries
type PurchaseOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.PurchaseOrderStatus
	VendorID   *uuid.UUID
}
