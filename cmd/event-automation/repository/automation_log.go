package repository

import (
	"context"
	"promo-tracking-backend/cmd/event-automation/model"

	"gorm.io/gorm"
)

type AutomationLogRepo struct {
	db *gorm.DB
}

func NewAutomationLogRepo(db *gorm.DB) *AutomationLogRepo {
	return &AutomationLogRepo{
		db: db,
	}
}

func (r *AutomationLogRepo) ListLogs(ctx context.Context, eventID string) ([]model.AutomationLog, error) {

	var logs []model.AutomationLog

	result := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&logs)

	if result.Error != nil {
		return nil, result.Error
	}

	return logs, nil
}

// AppendLog verifies the owning event inside the same transaction so a log
// can never be attached to a deleted event.
func (r *AutomationLogRepo) AppendLog(ctx context.Context, log model.AutomationLog) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Where("id = ?", log.EventID).First(&event).Error; err != nil {
			return err
		}
		return tx.Create(&log).Error
	})
}
