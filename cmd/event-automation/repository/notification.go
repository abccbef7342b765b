package repository

import (
	"context"
	"promo-tracking-backend/cmd/event-automation/model"

	"gorm.io/gorm"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *NotificationRepo {
	return &NotificationRepo{
		db: db,
	}
}

func (r *NotificationRepo) ListNotifications(ctx context.Context, eventID string) ([]model.EventNotification, error) {

	var notifications []model.EventNotification

	result := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&notifications)

	if result.Error != nil {
		return nil, result.Error
	}

	return notifications, nil
}

func (r *NotificationRepo) CreateNotification(ctx context.Context, notification model.EventNotification) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.Where("id = ?", notification.EventID).First(&event).Error; err != nil {
			return err
		}
		return tx.Create(&notification).Error
	})
}
