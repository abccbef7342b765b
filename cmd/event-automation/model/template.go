package model

import (
	"time"

	"gorm.io/datatypes"
)

type EventTemplate struct {
	ID                    string         `gorm:"column:id;primaryKey" json:"id"`
	Name                  string         `gorm:"column:name;size:200;not null" json:"name"`
	EventType             string         `gorm:"column:event_type;size:50;not null" json:"event_type"`
	Description           string         `gorm:"column:description;type:text" json:"description"`
	URLPattern            string         `gorm:"column:url_pattern;type:text" json:"url_pattern"`
	AutomationScript      string         `gorm:"column:automation_script;type:text" json:"automation_script"`
	NotificationTemplates datatypes.JSON `gorm:"column:notification_templates" json:"notification_templates"`
	IsActive              bool           `gorm:"column:is_active" json:"is_active"`
	CreatedAt             time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (m *EventTemplate) TableName() string {
	return "event_templates"
}
