package model

import "time"

type SubscriptionStatus string

var (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionInactive  SubscriptionStatus = "inactive"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type UserSubscription struct {
	ID               int                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID           int                `gorm:"column:user_id;not null;index" json:"user_id"`
	PlanName         string             `gorm:"column:plan_name;size:50;not null" json:"plan_name"`
	Status           SubscriptionStatus `gorm:"column:status;size:20" json:"status"`
	StartDate        time.Time          `gorm:"column:start_date" json:"start_date"`
	EndDate          *time.Time         `gorm:"column:end_date" json:"end_date"`
	IsActive         bool               `gorm:"column:is_active" json:"is_active"`
	MaxQRCodes       int                `gorm:"column:max_qr_codes" json:"max_qr_codes"`
	MaxScansPerMonth int                `gorm:"column:max_scans_per_month" json:"max_scans_per_month"`
}

func (m *UserSubscription) TableName() string {
	return "user_subscriptions"
}
