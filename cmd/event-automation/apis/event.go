package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/event-automation/model"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IEventRepo interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEvent(ctx context.Context, id string) (model.Event, error)
	CreateEvent(ctx context.Context, event model.Event) error
	UpdateEvent(ctx context.Context, event model.Event) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

type EventAPI struct {
	eventRepo IEventRepo
}

func NewEventAPI(eventRepo IEventRepo) *EventAPI {

	return &EventAPI{
		eventRepo: eventRepo,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.POST("/events", a.createEvent)
	g.GET("/events", a.listEvents)
	g.GET("/events/:id", a.getEvent)
	g.PUT("/events/:id", a.updateEvent)
	g.DELETE("/events/:id", a.deleteEvent)
}

func (a *EventAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.EventCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "missing required fields: name, start_date and end_date")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return badRequestJSON(c, "invalid start_date")
	}

	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return badRequestJSON(c, "invalid end_date")
	}

	userID := req.UserID
	if userID == 0 {
		if principal, ok := principalUserID(c); ok {
			userID = principal
		} else {
			userID = 1
		}
	}

	eventType := req.EventType
	if eventType == "" {
		eventType = "general"
	}

	now := time.Now().UTC()

	event := model.Event{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Name:               req.Name,
		EventType:          eventType,
		URL:                req.URL,
		StartDate:          startDate,
		EndDate:            endDate,
		TrackingStatus:     model.TrackingActive,
		RegistrationStatus: model.RegistrationPending,
		Description:        req.Description,
		Location:           req.Location,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = a.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    event,
		},
	)
}

func (a *EventAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.eventRepo.ListEvents(ctx)
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    events,
		},
	)
}

func (a *EventAPI) getEvent(c echo.Context) error {

	ctx := c.Request().Context()

	event, err := a.eventRepo.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    event,
		},
	)
}

func (a *EventAPI) updateEvent(c echo.Context) error {

	ctx := c.Request().Context()

	event, err := a.eventRepo.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	var req model.EventUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.URL != nil {
		event.URL = *req.URL
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return badRequestJSON(c, "invalid start_date")
		}
		event.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return badRequestJSON(c, "invalid end_date")
		}
		event.EndDate = endDate
	}

	updated, err := a.eventRepo.UpdateEvent(ctx, event)
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    updated,
		},
	)
}

func (a *EventAPI) deleteEvent(c echo.Context) error {

	ctx := c.Request().Context()

	err := a.eventRepo.DeleteEvent(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "event deleted",
		},
	)
}
