package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *LeadFilterParams) ([]entity.Lead, int64, error)
	CountOpen(ctx context.Context) (int64, error)
}

// LeadFilterParams contains filtering parameters for lead queries
type LeadFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.LeadStatus
	OwnerID    *uuid.UUID
}

// OpportunityRepository defines the interface for opportunity data operations
type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error)
	Update(ctx context.Context, opportunity *entity.Opportunity) error
	List(ctx context.Context, params *OpportunityFilterParams) ([]entity.Opportunity, int64, error)
}

// OpportunityFilterParams contains filtering parameters for opportunity queries
type OpportunityFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Stage      *enum.OpportunityStage
	AssigneeID *uuid.UUID
}
