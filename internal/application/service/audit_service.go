package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/internal/domain/repository"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// Audit action tags
const (
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDelete  = "delete"
	AuditActionPayment = "payment"
	AuditActionApprove = "approve"
	AuditActionDeliver = "deliver"
	AuditActionReceive = "receive"
	AuditActionConvert = "convert"
)

// AuditService appends entries to the audit trail. Recording is
// fire-and-forget: a failed write is logged and never surfaced to the
// caller, so the triggering business operation cannot fail because of
// audit logging.
type AuditService struct {
	auditRepo repository.AuditRepository
	logger    zerolog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record appends one audit entry. oldValue and newValue are optional
// snapshots serialized as JSON; values that fail to serialize are
// dropped rather than blocking the entry.
func (s *AuditService) Record(ctx context.Context, userID uuid.UUID, action, entityType string, entityID uuid.UUID, oldValue, newValue interface{}) {
	entry := &entity.AuditLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   marshalSnapshot(oldValue),
		NewValue:   marshalSnapshot(newValue),
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error().
			Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID.String()).
			Msg("failed to write audit log entry")
	}
}

// ListEntries lists audit entries with filtering
func (s *AuditService) ListEntries(ctx context.Context, params *repository.AuditFilterParams) (*pagination.PaginatedResult[entity.AuditLog], error) {
	entries, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(entries, pag), nil
}

func marshalSnapshot(v interface{}) *string {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}
