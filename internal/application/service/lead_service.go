package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/apperror"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// LeadService handles lead management and lead-to-opportunity
// conversion
type LeadService struct {
	leadRepo        repository.LeadRepository
	opportunityRepo repository.OpportunityRepository
	txManager       repository.TxManager
	audit           *AuditService
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repository.LeadRepository,
	opportunityRepo repository.OpportunityRepository,
	txManager repository.TxManager,
	audit *AuditService,
) *LeadService {
	return &LeadService{
		leadRepo:        leadRepo,
		opportunityRepo: opportunityRepo,
		txManager:       txManager,
		audit:           audit,
	}
}

// CreateLeadInput represents the create lead input
type CreateLeadInput struct {
	Name       string
	Source     string
	Department string
	OwnerID    uuid.UUID
	Notes      *string
}

// CreateLead creates a new lead in the New status
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Lead name is required")
	}
	if input.OwnerID == uuid.Nil {
		return nil, apperror.NewValidationError("Lead owner is required")
	}

	lead := &entity.Lead{
		Name:       input.Name,
		Source:     input.Source,
		Department: input.Department,
		OwnerID:    input.OwnerID,
		Status:     enum.LeadStatusNew,
		Notes:      input.Notes,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, input.OwnerID, AuditActionCreate, "lead", lead.ID, nil, lead)
	return lead, nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeads lists leads with filtering
func (s *LeadService) ListLeads(ctx context.Context, params *repository.LeadFilterParams) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// UpdateLeadInput represents the update lead input
type UpdateLeadInput struct {
	Name       *string
	Source     *string
	Department *string
	Status     *enum.LeadStatus
	Notes      *string
}

// UpdateLead updates mutable lead fields
func (s *LeadService) UpdateLead(ctx context.Context, userID, leadID uuid.UUID, input *UpdateLeadInput) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	before := *lead
	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Source != nil {
		lead.Source = *input.Source
	}
	if input.Department != nil {
		lead.Department = *input.Department
	}
	if input.Status != nil {
		lead.Status = *input.Status
	}
	if input.Notes != nil {
		lead.Notes = input.Notes
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionUpdate, "lead", lead.ID, &before, lead)
	return lead, nil
}

// DeleteLead deletes a lead
func (s *LeadService) DeleteLead(ctx context.Context, userID, leadID uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}

	if err := s.leadRepo.Delete(ctx, leadID); err != nil {
		return err
	}

	s.audit.Record(ctx, userID, AuditActionDelete, "lead", leadID, lead, nil)
	return nil
}

// ConvertLeadInput represents optional overrides for the opportunity
// created by a conversion
type ConvertLeadInput struct {
	Title string
	Value float64
}

// ConvertLeadResult carries the converted lead and the opportunity it
// produced
type ConvertLeadResult struct {
	Lead        *entity.Lead        `json:"lead"`
	Opportunity *entity.Opportunity `json:"opportunity"`
}

// ConvertLead converts a lead into an opportunity. Converted is
// terminal: a second call on the same lead is rejected with a state
// conflict, so exactly one opportunity is ever created per lead. The
// opportunity inherits the lead's owner as assignee and its department
// tag; title defaults to "<name> Opportunity" and value to 0.
func (s *LeadService) ConvertLead(ctx context.Context, userID, leadID uuid.UUID, input *ConvertLeadInput) (*ConvertLeadResult, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if lead.Status == enum.LeadStatusConverted {
		return nil, apperror.NewStateConflictError("Lead has already been converted")
	}

	title := input.Title
	if title == "" {
		title = fmt.Sprintf("%s Opportunity", lead.Name)
	}

	before := *lead
	opportunity := &entity.Opportunity{
		Title:      title,
		LeadID:     lead.ID,
		Value:      input.Value,
		Stage:      enum.OpportunityStageProspecting,
		AssigneeID: lead.OwnerID,
		Department: lead.Department,
	}

	err = s.txManager.Transaction(ctx, func(ctx context.Context) error {
		if err := s.opportunityRepo.Create(ctx, opportunity); err != nil {
			return err
		}
		lead.Status = enum.LeadStatusConverted
		return s.leadRepo.Update(ctx, lead)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, userID, AuditActionConvert, "lead", lead.ID, &before, lead)

	return &ConvertLeadResult{
		Lead:        lead,
		Opportunity: opportunity,
	}, nil
}
