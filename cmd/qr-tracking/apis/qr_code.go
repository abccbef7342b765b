package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IQRCodeRepo interface {
	ListQRCodes(ctx context.Context, userID int) ([]model.QRCode, error)
	GetQRCode(ctx context.Context, id string) (model.QRCode, error)
	CreateQRCode(ctx context.Context, code model.QRCode) error
	UpdateQRCode(ctx context.Context, code model.QRCode) (model.QRCode, error)
	DeleteQRCode(ctx context.Context, id string) error
}

type QRCodeAPI struct {
	qrCodeRepo IQRCodeRepo
}

func NewQRCodeAPI(qrCodeRepo IQRCodeRepo) *QRCodeAPI {

	return &QRCodeAPI{
		qrCodeRepo: qrCodeRepo,
	}
}

func (a *QRCodeAPI) Setup(g *echo.Group) {
	g.POST("/qrcodes", a.createQRCode)
	g.GET("/qrcodes", a.listQRCodes)
	g.GET("/qrcodes/:id", a.getQRCode)
	g.PUT("/qrcodes/:id", a.updateQRCode)
	g.DELETE("/qrcodes/:id", a.deleteQRCode)
}

func (a *QRCodeAPI) createQRCode(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.QRCodeCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "target_content is required and must not exceed 2048 characters")
	}

	userID := req.UserID
	if userID == 0 {
		if principal, ok := principalUserID(c); ok {
			userID = principal
		} else {
			userID = 1
		}
	}

	now := time.Now().UTC()

	code := model.QRCode{
		ID:            uuid.NewString(),
		TrackingID:    uuid.NewString(),
		UserID:        userID,
		TargetContent: req.TargetContent,
		Title:         req.Title,
		Description:   req.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
		IsActive:      true,
	}

	err := a.qrCodeRepo.CreateQRCode(ctx, code)
	if err != nil {
		return storeErrorJSON(c, err, "qr code")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    code,
		},
	)
}

func (a *QRCodeAPI) listQRCodes(c echo.Context) error {

	ctx := c.Request().Context()

	userID := 0
	if raw := c.QueryParam("user_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequestJSON(c, "invalid user_id")
		}
		userID = parsed
	}

	codes, err := a.qrCodeRepo.ListQRCodes(ctx, userID)
	if err != nil {
		return storeErrorJSON(c, err, "qr code")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    codes,
		},
	)
}

func (a *QRCodeAPI) getQRCode(c echo.Context) error {

	ctx := c.Request().Context()

	code, err := a.qrCodeRepo.GetQRCode(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "qr code")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    code,
		},
	)
}

func (a *QRCodeAPI) updateQRCode(c echo.Context) error {

	ctx := c.Request().Context()

	code, err := a.qrCodeRepo.GetQRCode(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "qr code")
	}

	var req model.QRCodeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	if err := validate.Struct(&req); err != nil {
		return badRequestJSON(c, "target_content must not exceed 2048 characters")
	}

	if req.TargetContent != nil {
		code.TargetContent = *req.TargetContent
	}
	if req.Title != nil {
		code.Title = *req.Title
	}
	if req.Description != nil {
		code.Description = *req.Description
	}
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}

	updated, err := a.qrCodeRepo.UpdateQRCode(ctx, code)
	if err != nil {
		return storeErrorJSON(c, err, "qr code")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    updated,
		},
	)
}

func (a *QRCodeAPI) deleteQRCode(c echo.Context) error {

	ctx := c.Request().Context()

	err := a.qrCodeRepo.DeleteQRCode(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "qr code")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "qr code deleted",
		},
	)
}
