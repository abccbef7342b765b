package repository

import (
	"context"
	"promo-tracking-backend/cmd/event-automation/model"

	"gorm.io/gorm"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{
		db: db,
	}
}

// GetSubscription returns the most recently started subscription for the
// user; a user keeps history rows after plan changes.
func (r *SubscriptionRepo) GetSubscription(ctx context.Context, userID int) (model.UserEventSubscription, error) {

	var subscription model.UserEventSubscription

	result := r.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		First(&subscription)

	if result.Error != nil {
		return model.UserEventSubscription{}, result.Error
	}

	return subscription, nil
}

func (r *SubscriptionRepo) CreateSubscription(ctx context.Context, subscription model.UserEventSubscription) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&subscription).Error
	})
}

func (r *SubscriptionRepo) UpdateSubscription(ctx context.Context, subscription model.UserEventSubscription) (model.UserEventSubscription, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&subscription).Error
	})

	if err != nil {
		return model.UserEventSubscription{}, err
	}

	return subscription, nil
}
