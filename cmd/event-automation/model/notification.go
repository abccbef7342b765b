package model

import "time"

type NotificationType string

var (
	NotifyEmail NotificationType = "email"
	NotifyLine  NotificationType = "line"
	NotifySMS   NotificationType = "sms"
	NotifyPush  NotificationType = "push"
)

type NotificationStatus string

var (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

type EventNotification struct {
	ID               string             `gorm:"column:id;primaryKey" json:"id"`
	EventID          string             `gorm:"column:event_id;size:36;not null;index" json:"event_id"`
	NotificationType NotificationType   `gorm:"column:notification_type;size:20;not null" json:"notification_type"`
	Recipient        string             `gorm:"column:recipient;size:200;not null" json:"recipient"`
	Subject          string             `gorm:"column:subject;size:200" json:"subject"`
	Content          string             `gorm:"column:content;type:text;not null" json:"content"`
	Status           NotificationStatus `gorm:"column:status;size:20" json:"status"`
	ScheduledTime    *time.Time         `gorm:"column:scheduled_time" json:"scheduled_time"`
	SentTime         *time.Time         `gorm:"column:sent_time" json:"sent_time"`
	ErrorMessage     string             `gorm:"column:error_message;type:text" json:"error_message"`
	CreatedAt        time.Time          `gorm:"column:created_at" json:"created_at"`
}

func (m *EventNotification) TableName() string {
	return "event_notifications"
}
