package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/event-automation/model"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ITemplateRepo interface {
	ListTemplates(ctx context.Context) ([]model.EventTemplate, error)
	GetTemplate(ctx context.Context, id string) (model.EventTemplate, error)
	CreateTemplate(ctx context.Context, template model.EventTemplate) error
	UpdateTemplate(ctx context.Context, template model.EventTemplate) (model.EventTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type TemplateAPI struct {
	templateRepo ITemplateRepo
}

func NewTemplateAPI(templateRepo ITemplateRepo) *TemplateAPI {

	return &TemplateAPI{
		templateRepo: templateRepo,
	}
}

func (a *TemplateAPI) Setup(g *echo.Group) {
	g.POST("/templates", a.createTemplate)
	g.GET("/templates", a.listTemplates)
	g.GET("/templates/:id", a.getTemplate)
	g.PUT("/templates/:id", a.updateTemplate)
	g.DELETE("/templates/:id", a.deleteTemplate)
}

func (a *TemplateAPI) createTemplate(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.TemplateCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "missing required fields: name and event_type")
	}

	template := model.EventTemplate{
		ID:                    uuid.NewString(),
		Name:                  req.Name,
		EventType:             req.EventType,
		Description:           req.Description,
		URLPattern:            req.URLPattern,
		AutomationScript:      req.AutomationScript,
		NotificationTemplates: req.NotificationTemplates,
		IsActive:              true,
		CreatedAt:             time.Now().UTC(),
	}

	err := a.templateRepo.CreateTemplate(ctx, template)
	if err != nil {
		return storeErrorJSON(c, err, "template")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    template,
		},
	)
}

func (a *TemplateAPI) listTemplates(c echo.Context) error {

	ctx := c.Request().Context()

	templates, err := a.templateRepo.ListTemplates(ctx)
	if err != nil {
		return storeErrorJSON(c, err, "template")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    templates,
		},
	)
}

func (a *TemplateAPI) getTemplate(c echo.Context) error {

	ctx := c.Request().Context()

	template, err := a.templateRepo.GetTemplate(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "template")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    template,
		},
	)
}

func (a *TemplateAPI) updateTemplate(c echo.Context) error {

	ctx := c.Request().Context()

	template, err := a.templateRepo.GetTemplate(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "template")
	}

	var req model.TemplateUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.EventType != nil {
		template.EventType = *req.EventType
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.URLPattern != nil {
		template.URLPattern = *req.URLPattern
	}
	if req.AutomationScript != nil {
		template.AutomationScript = *req.AutomationScript
	}
	if req.NotificationTemplates != nil {
		template.NotificationTemplates = req.NotificationTemplates
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	updated, err := a.templateRepo.UpdateTemplate(ctx, template)
	if err != nil {
		return storeErrorJSON(c, err, "template")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    updated,
		},
	)
}

func (a *TemplateAPI) deleteTemplate(c echo.Context) error {

	ctx := c.Request().Context()

	err := a.templateRepo.DeleteTemplate(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "template")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "template deleted",
		},
	)
}
