package repository

import (
	"context"
	"promo-tracking-backend/cmd/qr-tracking/model"

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

func (r *SubscriptionRepo) GetSubscription(ctx context.Context, userID int) (model.UserSubscription, error) {

	var subscription model.UserSubscription

	result := r.db.
		WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		First(&subscription)

	if result.Error != nil {
		return model.UserSubscription{}, result.Error
	}

	return subscription, nil
}

func (r *SubscriptionRepo) CreateSubscription(ctx context.Context, subscription model.UserSubscription) (model.UserSubscription, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&subscription).Error
	})

	if err != nil {
		return model.UserSubscription{}, err
	}

	return subscription, nil
}

func (r *SubscriptionRepo) UpdateSubscription(ctx context.Context, subscription model.UserSubscription) (model.UserSubscription, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(&subscription).Error
	})

	if err != nil {
		return model.UserSubscription{}, err
	}

	return subscription, nil
}
