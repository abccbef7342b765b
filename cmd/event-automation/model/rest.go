package model

import "gorm.io/datatypes"

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type EventCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	EventType   string `json:"event_type"`
	UserID      int    `json:"user_id"`
}

// EventUpdateRequest carries a partial overwrite; nil means "leave as is".
type EventUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	URL         *string `json:"url"`
	EventType   *string `json:"event_type"`
}

type AutomationLogCreateRequest struct {
	Status        string  `json:"status" validate:"required,oneof=success failed pending"`
	Message       string  `json:"message"`
	ScreenshotURL string  `json:"screenshot_url"`
	ExecutionTime float64 `json:"execution_time"`
}

type NotificationCreateRequest struct {
	EventID          string `json:"event_id" validate:"required"`
	NotificationType string `json:"notification_type" validate:"required,oneof=email line sms push"`
	Recipient        string `json:"recipient" validate:"required"`
	Subject          string `json:"subject"`
	Content          string `json:"content" validate:"required"`
	ScheduledTime    string `json:"scheduled_time"`
}

type TemplateCreateRequest struct {
	Name                  string         `json:"name" validate:"required"`
	EventType             string         `json:"event_type" validate:"required"`
	Description           string         `json:"description"`
	URLPattern            string         `json:"url_pattern"`
	AutomationScript      string         `json:"automation_script"`
	NotificationTemplates datatypes.JSON `json:"notification_templates"`
}

type TemplateUpdateRequest struct {
	Name                  *string        `json:"name"`
	EventType             *string        `json:"event_type"`
	Description           *string        `json:"description"`
	URLPattern            *string        `json:"url_pattern"`
	AutomationScript      *string        `json:"automation_script"`
	NotificationTemplates datatypes.JSON `json:"notification_templates"`
	IsActive              *bool          `json:"is_active"`
}

type SubscriptionCreateRequest struct {
	UserID               int            `json:"user_id" validate:"required"`
	PlanName             string         `json:"plan_name" validate:"required"`
	MaxEvents            int            `json:"max_events"`
	AutoRegisterEnabled  bool           `json:"auto_register_enabled"`
	NotificationChannels datatypes.JSON `json:"notification_channels"`
	EndDate              string         `json:"end_date"`
	AutoRenew            bool           `json:"auto_renew"`
}

type SubscriptionUpdateRequest struct {
	PlanName             *string        `json:"plan_name"`
	MaxEvents            *int           `json:"max_events"`
	AutoRegisterEnabled  *bool          `json:"auto_register_enabled"`
	NotificationChannels datatypes.JSON `json:"notification_channels"`
	Status               *string        `json:"status"`
	EndDate              *string        `json:"end_date"`
	AutoRenew            *bool          `json:"auto_renew"`
}
