package repository

import (
	"context"

	"gorm.io/gorm"

	"donorlink/internal/model"
)

// ActivityLogRepository defines activity log persistence operations.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	CreateBatch(ctx context.Context, entries []model.ActivityLog) error
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository builds a GORM-backed repository.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// CreateBatch inserts multiple entries in a single round trip.
func (r *activityLogRepository) CreateBatch(ctx context.Context, entries []model.ActivityLog) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(entries, 100).Error
}
