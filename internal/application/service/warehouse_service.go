package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/apperror"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// WarehouseService handles warehouse-related operations
type WarehouseService struct {
	warehouseRepo repository.WarehouseRepository
	audit         *AuditService
}

// NewWarehouseService creates a new warehouse service
func NewWarehouseService(warehouseRepo repository.WarehouseRepository, audit *AuditService) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		audit:         audit,
	}
}

// WarehouseInput represents create/update warehouse fields
type WarehouseInput struct {
	Name     string
	Location *string
}

// CreateWarehouse creates a new warehouse
func (s *WarehouseService) CreateWarehouse(ctx context.Context, userID uuid.UUID, input *WarehouseInput) (*entity.Warehouse, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Warehouse name is required")
	}

	warehouse := &entity.Warehouse{
		UserID:   userID,
		Name:     input.Name,
		Location: input.Location,
	}

	if err := s.warehouseRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionCreate, "warehouse", warehouse.ID, nil, warehouse)
	return warehouse, nil
}

// GetWarehouse retrieves a warehouse by ID
func (s *WarehouseService) GetWarehouse(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}
	return warehouse, nil
}

// ListWarehouses lists warehouses with pagination and search
func (s *WarehouseService) ListWarehouses(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Warehouse], error) {
	warehouses, total, err := s.warehouseRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(warehouses, pag), nil
}

// UpdateWarehouse updates a warehouse
func (s *WarehouseService) UpdateWarehouse(ctx context.Context, userID, id uuid.UUID, input *WarehouseInput) (*entity.Warehouse, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}

	before := *warehouse
	if input.Name != "" {
		warehouse.Name = input.Name
	}
	if input.Location != nil {
		warehouse.Location = input.Location
	}

	if err := s.warehouseRepo.Update(ctx, warehouse); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionUpdate, "warehouse", warehouse.ID, &before, warehouse)
	return warehouse, nil
}

// DeleteWarehouse deletes a warehouse
func (s *WarehouseService) DeleteWarehouse(ctx context.Context, userID, id uuid.UUID) error {
	warehouse, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return apperror.NewNotFoundError("Warehouse")
	}

	if err := s.warehouseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, userID, AuditActionDelete, "warehouse", id, warehouse, nil)
	return nil
}
