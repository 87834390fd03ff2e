package repository

import (
	"context"

	domainRepo "github.com/sellardev/bizflow-api/internal/domain/repository"
	"gorm.io/gorm"
)

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) domainRepo.SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next allocates the next number for a series in a single statement.
// The upsert-increment is atomic at the database level, so concurrent
// callers each get a distinct value with no gaps under contention.
func (r *sequenceRepository) Next(ctx context.Context, series string, seed int64) (int64, error) {
	var value int64
	err := dbFrom(ctx, r.db).WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (series, value)
		VALUES (?, ?)
		ON CONFLICT (series)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value`,
		series, seed+1,
	).Scan(&value).Error
	return value, err
}
