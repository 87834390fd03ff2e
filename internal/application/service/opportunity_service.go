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

// OpportunityService handles opportunity pipeline operations.
// Opportunities are only ever created by lead conversion.
type OpportunityService struct {
	opportunityRepo repository.OpportunityRepository
	audit           *AuditService
}

// NewOpportunityService creates a new opportunity service
func NewOpportunityService(opportunityRepo repository.OpportunityRepository, audit *AuditService) *OpportunityService {
	return &OpportunityService{
		opportunityRepo: opportunityRepo,
		audit:           audit,
	}
}

// GetOpportunity retrieves an opportunity by ID
func (s *OpportunityService) GetOpportunity(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, apperror.NewNotFoundError("Opportunity")
	}
	return opportunity, nil
}

// ListOpportunities lists opportunities with filtering
func (s *OpportunityService) ListOpportunities(ctx context.Context, params *repository.OpportunityFilterParams) (*pagination.PaginatedResult[entity.Opportunity], error) {
	opportunities, total, err := s.opportunityRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(opportunities, pag), nil
}

// UpdateOpportunityInput represents the update opportunity input
type UpdateOpportunityInput struct {
	Title *string
	Value *float64
	Stage *enum.OpportunityStage
}

// UpdateOpportunity updates an opportunity's title, value or pipeline
// stage
func (s *OpportunityService) UpdateOpportunity(ctx context.Context, userID, id uuid.UUID, input *UpdateOpportunityInput) (*entity.Opportunity, error) {
	opportunity, err := s.opportunityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, apperror.NewNotFoundError("Opportunity")
	}

	before := *opportunity
	if input.Title != nil {
		opportunity.Title = *input.Title
	}
	if input.Value != nil {
		opportunity.Value = *input.Value
	}
	if input.Stage != nil {
		opportunity.Stage = *input.Stage
	}

	if err := s.opportunityRepo.Update(ctx, opportunity); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionUpdate, "opportunity", opportunity.ID, &before, opportunity)
	return opportunity, nil
}
