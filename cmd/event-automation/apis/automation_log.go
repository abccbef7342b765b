package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/event-automation/model"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IAutomationLogRepo interface {
	ListLogs(ctx context.Context, eventID string) ([]model.AutomationLog, error)
	AppendLog(ctx context.Context, log model.AutomationLog) error
}

// AutomationLogAPI records automation attempts reported by the external
// worker. Logs are never updated or deleted.
type AutomationLogAPI struct {
	logRepo IAutomationLogRepo
}

func NewAutomationLogAPI(logRepo IAutomationLogRepo) *AutomationLogAPI {

	return &AutomationLogAPI{
		logRepo: logRepo,
	}
}

func (a *AutomationLogAPI) Setup(g *echo.Group) {
	g.POST("/events/:id/logs", a.appendLog)
	g.GET("/events/:id/logs", a.listLogs)
}

func (a *AutomationLogAPI) appendLog(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.AutomationLogCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "status is required and must be one of success, failed, pending")
	}

	log := model.AutomationLog{
		ID:            uuid.NewString(),
		EventID:       c.Param("id"),
		Status:        model.AutomationStatus(req.Status),
		Message:       req.Message,
		ScreenshotURL: req.ScreenshotURL,
		ExecutionTime: req.ExecutionTime,
		Timestamp:     time.Now().UTC(),
	}

	err := a.logRepo.AppendLog(ctx, log)
	if err != nil {
		return storeErrorJSON(c, err, "event")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    log,
		},
	)
}

func (a *AutomationLogAPI) listLogs(c echo.Context) error {

	ctx := c.Request().Context()

	logs, err := a.logRepo.ListLogs(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "automation log")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    logs,
		},
	)
}
