package repository

import (
	"context"
	"promo-tracking-backend/cmd/event-automation/model"
	"time"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

func (r *EventRepo) ListEvents(ctx context.Context) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (r *EventRepo) GetEvent(ctx context.Context, id string) (model.Event, error) {

	var event model.Event

	result := r.db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&event)

	if result.Error != nil {
		return model.Event{}, result.Error
	}

	return event, nil
}

func (r *EventRepo) CreateEvent(ctx context.Context, event model.Event) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&event).Error
	})
}

// UpdateEvent overwrites every column of the row; updated_at is restamped.
func (r *EventRepo) UpdateEvent(ctx context.Context, event model.Event) (model.Event, error) {

	event.UpdatedAt = time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&event).Error
	})

	if err != nil {
		return model.Event{}, err
	}

	return event, nil
}

func (r *EventRepo) DeleteEvent(ctx context.Context, id string) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
