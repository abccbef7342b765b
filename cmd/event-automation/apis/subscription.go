package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/event-automation/model"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ISubscriptionRepo interface {
	GetSubscription(ctx context.Context, userID int) (model.UserEventSubscription, error)
	CreateSubscription(ctx context.Context, subscription model.UserEventSubscription) error
	UpdateSubscription(ctx context.Context, subscription model.UserEventSubscription) (model.UserEventSubscription, error)
}

type SubscriptionAPI struct {
	subscriptionRepo ISubscriptionRepo
}

func NewSubscriptionAPI(subscriptionRepo ISubscriptionRepo) *SubscriptionAPI {

	return &SubscriptionAPI{
		subscriptionRepo: subscriptionRepo,
	}
}

func (a *SubscriptionAPI) Setup(g *echo.Group) {
	g.POST("/subscriptions", a.createSubscription)
	g.GET("/users/:user_id/subscription", a.getSubscription)
	g.PUT("/users/:user_id/subscription", a.updateSubscription)
}

func (a *SubscriptionAPI) createSubscription(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.SubscriptionCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "missing required fields: user_id and plan_name")
	}

	maxEvents := req.MaxEvents
	if maxEvents == 0 {
		maxEvents = 5
	}

	subscription := model.UserEventSubscription{
		ID:                   uuid.NewString(),
		UserID:               req.UserID,
		PlanName:             req.PlanName,
		MaxEvents:            maxEvents,
		AutoRegisterEnabled:  req.AutoRegisterEnabled,
		NotificationChannels: req.NotificationChannels,
		Status:               model.SubscriptionActive,
		StartDate:            time.Now().UTC(),
		AutoRenew:            req.AutoRenew,
		CreatedAt:            time.Now().UTC(),
	}

	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return badRequestJSON(c, "invalid end_date")
		}
		subscription.EndDate = &endDate
	}

	err := a.subscriptionRepo.CreateSubscription(ctx, subscription)
	if err != nil {
		return storeErrorJSON(c, err, "subscription")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    subscription,
		},
	)
}

func (a *SubscriptionAPI) getSubscription(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return badRequestJSON(c, "invalid user_id")
	}

	subscription, err := a.subscriptionRepo.GetSubscription(ctx, userID)
	if err != nil {
		return storeErrorJSON(c, err, "subscription")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    subscription,
		},
	)
}

func (a *SubscriptionAPI) updateSubscription(c echo.Context) error {

	ctx := c.Request().Context()

	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return badRequestJSON(c, "invalid user_id")
	}

	subscription, err := a.subscriptionRepo.GetSubscription(ctx, userID)
	if err != nil {
		return storeErrorJSON(c, err, "subscription")
	}

	var req model.SubscriptionUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if req.PlanName != nil {
		subscription.PlanName = *req.PlanName
	}
	if req.MaxEvents != nil {
		subscription.MaxEvents = *req.MaxEvents
	}
	if req.AutoRegisterEnabled != nil {
		subscription.AutoRegisterEnabled = *req.AutoRegisterEnabled
	}
	if req.NotificationChannels != nil {
		subscription.NotificationChannels = req.NotificationChannels
	}
	if req.Status != nil {
		subscription.Status = model.SubscriptionStatus(*req.Status)
	}
	if req.AutoRenew != nil {
		subscription.AutoRenew = *req.AutoRenew
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return badRequestJSON(c, "invalid end_date")
		}
		subscription.EndDate = &endDate
	}

	updated, err := a.subscriptionRepo.UpdateSubscription(ctx, subscription)
	if err != nil {
		return storeErrorJSON(c, err, "subscription")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    updated,
		},
	)
}
