package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/apperror"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// VendorService handles vendor-related operations
type VendorService struct {
	vendorRepo repository.VendorRepository
	audit      *AuditService
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, audit *AuditService) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		audit:      audit,
	}
}

// VendorInput represents create/update vendor fields
type VendorInput struct {
	Name    string
	Email   *string
	Phone   *string
	Address *string
}

// CreateVendor creates a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, userID uuid.UUID, input *VendorInput) (*entity.Vendor, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Vendor name is required")
	}

	vendor := &entity.Vendor{
		UserID:  userID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionCreate, "vendor", vendor.ID, nil, vendor)
	return vendor, nil
}

// GetVendor retrieves a vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListVendors lists vendors with pagination and search
func (s *VendorService) ListVendors(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Vendor], error) {
	vendors, total, err := s.vendorRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(vendors, pag), nil
}

// UpdateVendor updates a vendor
func (s *VendorService) UpdateVendor(ctx context.Context, userID, id uuid.UUID, input *VendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	before := *vendor
	if input.Name != "" {
		vendor.Name = input.Name
	}
	if input.Email != nil {
		vendor.Email = input.Email
	}
	if input.Phone != nil {
		vendor.Phone = input.Phone
	}
	if input.Address != nil {
		vendor.Address = input.Address
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionUpdate, "vendor", vendor.ID, &before, vendor)
	return vendor, nil
}

// DeleteVendor deletes a vendor
func (s *VendorService) DeleteVendor(ctx context.Context, userID, id uuid.UUID) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}

	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, userID, AuditActionDelete, "vendor", id, vendor, nil)
	return nil
}
