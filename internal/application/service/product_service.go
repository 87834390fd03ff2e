package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/apperror"
	"github.com/sellardev/bizflow-api/pkg/pagination"
	"github.com/sellardev/bizflow-api/pkg/utils"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
	audit       *AuditService
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, audit *AuditService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		audit:       audit,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	UserID        uuid.UUID
	Name          string
	SKU           string
	Unit          string
	UnitPrice     float64
	CostPrice     float64
	QuantityAlert int
	Notes         *string
}

// CreateProduct creates a new product. The SKU is generated when the
// caller does not supply one.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Product name is required")
	}

	sku := input.SKU
	if sku == "" {
		sku = utils.GenerateSKU()
	}

	existing, err := s.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product SKU already exists")
	}

	product := &entity.Product{
		UserID:        input.UserID,
		Name:          input.Name,
		SKU:           sku,
		Unit:          input.Unit,
		UnitPrice:     input.UnitPrice,
		CostPrice:     input.CostPrice,
		QuantityAlert: input.QuantityAlert,
		Notes:         input.Notes,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.UserID, AuditActionCreate, "product", product.ID, nil, product)
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with pagination and search
func (s *ProductService) ListProducts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input. Identity
// fields (SKU) are immutable once created; prices are not.
type UpdateProductInput struct {
	Name          *string
	Unit          *string
	UnitPrice     *float64
	CostPrice     *float64
	QuantityAlert *int
	Notes         *string
}

// UpdateProduct updates mutable product fields
func (s *ProductService) UpdateProduct(ctx context.Context, userID, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	before := *product
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.UnitPrice != nil {
		product.UnitPrice = *input.UnitPrice
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.Notes != nil {
		product.Notes = input.Notes
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionUpdate, "product", product.ID, &before, product)
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, userID, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, userID, AuditActionDelete, "product", id, product, nil)
	return nil
}
