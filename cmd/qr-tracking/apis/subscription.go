package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

type ISubscriptionRepo interface {
	GetSubscription(ctx context.Context, userID int) (model.UserSubscription, error)
	CreateSubscription(ctx context.Context, subscription model.UserSubscription) (model.UserSubscription, error)
	UpdateSubscription(ctx context.Context, subscription model.UserSubscription) (model.UserSubscription, error)
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

	maxQRCodes := req.MaxQRCodes
	if maxQRCodes == 0 {
		maxQRCodes = 5
	}

	maxScans := req.MaxScansPerMonth
	if maxScans == 0 {
		maxScans = 100
	}

	subscription := model.UserSubscription{
		UserID:           req.UserID,
		PlanName:         req.PlanName,
		Status:           model.SubscriptionActive,
		StartDate:        time.Now().UTC(),
		IsActive:         true,
		MaxQRCodes:       maxQRCodes,
		MaxScansPerMonth: maxScans,
	}

	if req.EndDate != "" {
		endDate, err := parseDate(req.EndDate)
		if err != nil {
			return badRequestJSON(c, "invalid end_date")
		}
		subscription.EndDate = &endDate
	}

	created, err := a.subscriptionRepo.CreateSubscription(ctx, subscription)
	if err != nil {
		return storeErrorJSON(c, err, "subscription")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    created,
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
	if req.Status != nil {
		subscription.Status = model.SubscriptionStatus(*req.Status)
	}
	if req.IsActive != nil {
		subscription.IsActive = *req.IsActive
	}
	if req.MaxQRCodes != nil {
		subscription.MaxQRCodes = *req.MaxQRCodes
	}
	if req.MaxScansPerMonth != nil {
		subscription.MaxScansPerMonth = *req.MaxScansPerMonth
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
