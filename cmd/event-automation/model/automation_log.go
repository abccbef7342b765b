package model

import "time"

type AutomationStatus string

var (
	AutomationSuccess AutomationStatus = "success"
	AutomationFailed  AutomationStatus = "failed"
	AutomationPending AutomationStatus = "pending"
)

// AutomationLog is append-only: one row per automation attempt, never
// updated or deleted through the API.
type AutomationLog struct {
	ID            string           `gorm:"column:id;primaryKey" json:"id"`
	EventID       string           `gorm:"column:event_id;size:36;not null;index" json:"event_id"`
	Status        AutomationStatus `gorm:"column:status;size:20;not null" json:"status"`
	Message       string           `gorm:"column:message;type:text" json:"message"`
	ScreenshotURL string           `gorm:"column:screenshot_url;type:text" json:"screenshot_url"`
	ExecutionTime float64          `gorm:"column:execution_time" json:"execution_time"`
	Timestamp     time.Time        `gorm:"column:timestamp" json:"timestamp"`
}

func (m *AutomationLog) TableName() string {
	return "automation_logs"
}
