package model

import (
	"time"

	"gorm.io/datatypes"
)

type SubscriptionStatus string

var (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type UserEventSubscription struct {
	ID                   string             `gorm:"column:id;primaryKey" json:"id"`
	UserID               int                `gorm:"column:user_id;not null;index" json:"user_id"`
	PlanName             string             `gorm:"column:plan_name;size:50;not null" json:"plan_name"`
	MaxEvents            int                `gorm:"column:max_events" json:"max_events"`
	AutoRegisterEnabled  bool               `gorm:"column:auto_register_enabled" json:"auto_register_enabled"`
	NotificationChannels datatypes.JSON     `gorm:"column:notification_channels" json:"notification_channels"`
	Status               SubscriptionStatus `gorm:"column:status;size:20" json:"status"`
	StartDate            time.Time          `gorm:"column:start_date" json:"start_date"`
	EndDate              *time.Time         `gorm:"column:end_date" json:"end_date"`
	AutoRenew            bool               `gorm:"column:auto_renew" json:"auto_renew"`
	CreatedAt            time.Time          `gorm:"column:created_at" json:"created_at"`
}

func (m *UserEventSubscription) TableName() string {
	return "user_event_subscriptions"
}
