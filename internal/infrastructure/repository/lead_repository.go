package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/enum"
	domainRepo "github.com/sellardev/bizflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var lead entity.Lead
	err := dbFrom(ctx, r.db).WithContext(ctx).First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Delete(&entity.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) List(ctx context.Context, params *domainRepo.LeadFilterParams) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	query := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.Lead{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR source ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.OwnerID != nil {
		query = query.Where("owner_id = ?", *params.OwnerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&leads).Error

	return leads, total, err
}

func (r *leadRepository) CountOpen(ctx context.Context) (int64, error) {
	var total int64
	err := dbFrom(ctx, r.db).WithContext(ctx).
		Model(&entity.Lead{}).
		Where("status NOT IN ?", []enum.LeadStatus{enum.LeadStatusConverted, enum.LeadStatusLost}).
		Count(&total).Error
	return total, err
}

type opportunityRepository struct {
	db *gorm.DB
}

// NewOpportunityRepository creates a new opportunity repository
func NewOpportunityRepository(db *gorm.DB) domainRepo.OpportunityRepository {
	return &opportunityRepository{db: db}
}

func (r *opportunityRepository) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Create(opportunity).Error
}

func (r *opportunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Opportunity, error) {
	var opportunity entity.Opportunity
	err := dbFrom(ctx, r.db).WithContext(ctx).First(&opportunity, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &opportunity, err
}

func (r *opportunityRepository) Update(ctx context.Context, opportunity *entity.Opportunity) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Save(opportunity).Error
}

func (r *opportunityRepository) List(ctx context.Context, params *domainRepo.OpportunityFilterParams) ([]entity.Opportunity, int64, error) {
	var opportunities []entity.Opportunity
	var total int64

	query := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.Opportunity{})

	if params.Search != "" {
		query = query.Where("title ILIKE ?", "%"+params.Search+"%")
	}
	if params.Stage != nil {
		query = query.Where("stage = ?", *params.Stage)
	}
	if params.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *params.AssigneeID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&opportunities).Error

	return opportunities, total, err
}
