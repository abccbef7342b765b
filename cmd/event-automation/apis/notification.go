package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/event-automation/model"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type INotificationRepo interface {
	ListNotifications(ctx context.Context, eventID string) ([]model.EventNotification, error)
	CreateNotification(ctx context.Context, notification model.EventNotification) error
}

type NotificationAPI struct {
	notificationRepo INotificationRepo
}

func NewNotificationAPI(notificationRepo INotificationRepo) *NotificationAPI {

	return &NotificationAPI{
		notificationRepo: notificationRepo,
	}
}

func (a *NotificationAPI) Setup(g *echo.Group) {
	g.POST("/notifications", a.createNotification)
	g.GET("/events/:id/notifications", a.listNotifications)
}

// createNotification schedules a notification row; dispatch is owned by an
// external sender, the API only persists the intent.
func (a *NotificationAPI) createNotification(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.NotificationCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "missing required fields: event_id, notification_type, recipient and content")
	}

	notification := model.EventNotification{
		ID:               uuid.NewString(),
		EventID:          req.EventID,
		NotificationType: model.NotificationType(req.NotificationType),
		Recipient:        req.Recipient,
		Subject:          req.Subject,
		Content:          req.Content,
		Status:           model.NotificationPending,
		CreatedAt:        time.Now().UTC(),
	}

	if req.ScheduledTime != "" {
		scheduled, err := parseDate(req.ScheduledTime)
		if err != nil {
			return badRequestJSON(c, "invalid scheduled_time")
		}
		notification.ScheduledTime = &scheduled
	}

	err := a.notificationRepo.CreateNotification(ctx, notification)
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    notification,
		},
	)
}

func (a *NotificationAPI) listNotifications(c echo.Context) error {

	ctx := c.Request().Context()

	notifications, err := a.notificationRepo.ListNotifications(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "notification")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    notifications,
		},
	)
}
