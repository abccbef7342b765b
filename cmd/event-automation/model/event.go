package model

import "time"

type TrackingStatus string

var (
	TrackingActive    TrackingStatus = "active"
	TrackingCompleted TrackingStatus = "completed"
	TrackingExpired   TrackingStatus = "expired"
)

type RegistrationStatus string

var (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationCompleted RegistrationStatus = "completed"
	RegistrationFailed    RegistrationStatus = "failed"
)

type Event struct {
	ID                  string             `gorm:"column:id;primaryKey" json:"id"`
	UserID              int                `gorm:"column:user_id;not null" json:"user_id"`
	Name                string             `gorm:"column:name;size:200;not null" json:"name"`
	EventType           string             `gorm:"column:event_type;size:50;not null" json:"event_type"`
	URL                 string             `gorm:"column:url;type:text" json:"url"`
	StartDate           time.Time          `gorm:"column:start_date;not null" json:"start_date"`
	EndDate             time.Time          `gorm:"column:end_date;not null" json:"end_date"`
	TrackingStatus      TrackingStatus     `gorm:"column:tracking_status;size:20" json:"tracking_status"`
	AutoRegisterEnabled bool               `gorm:"column:auto_register_enabled" json:"auto_register_enabled"`
	LastCheckedAt       *time.Time         `gorm:"column:last_checked_at" json:"last_checked_at"`
	NextCheckAt         *time.Time         `gorm:"column:next_check_at" json:"next_check_at"`
	RegistrationStatus  RegistrationStatus `gorm:"column:registration_status;size:20" json:"registration_status"`
	Description         string             `gorm:"column:description;type:text" json:"description"`
	Location            string             `gorm:"column:location;size:200" json:"location"`
	RewardInfo          string             `gorm:"column:reward_info;type:text" json:"reward_info"`
	CreatedAt           time.Time          `gorm:"column:created_at" json:"created_at"`
	UpdatedAt           time.Time          `gorm:"column:updated_at" json:"updated_at"`
}

func (m *Event) TableName() string {
	return "events"
}
