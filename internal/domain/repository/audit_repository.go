package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sellardev/bizflow-api/internal/domain/entity"
	"github.com/sellardev/bizflow-api/pkg/pagination"
)

// AuditRepository defines the interface for the append-only audit
// trail. Entries are written once; no update or delete exists.
type AuditRepository interface {
	Create(ctx context.Context, entry *entity.AuditLog) error
	List(ctx context.Context, params *AuditFilterParams) ([]entity.AuditLog, int64, error)
}

// AuditFilterParams contains filtering parameters for audit log queries
type AuditFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	EntityType string
	EntityID   *uuid.UUID
}
