package apis

import (
	"context"
	"net/http"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type IScanRepo interface {
	ListScans(ctx context.Context, qrCodeID string) ([]model.QRScan, error)
	RecordScan(ctx context.Context, trackingID string, scan model.QRScan) (model.QRScan, error)
}

type ScanAPI struct {
	scanRepo IScanRepo
}

func NewScanAPI(scanRepo IScanRepo) *ScanAPI {

	return &ScanAPI{
		scanRepo: scanRepo,
	}
}

func (a *ScanAPI) Setup(g *echo.Group) {
	g.POST("/scan/:tracking_id", a.recordScan)
	g.GET("/qrcodes/:id/scans", a.listScans)
	g.GET("/qrcodes/:id/scans/export", a.exportScans)
}

// recordScan is keyed by the public tracking id, not the primary key; the
// repo resolves the owning code and bumps its counter atomically.
func (a *ScanAPI) recordScan(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.ScanCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequestJSON(c, "invalid request body")
	}

	scan := model.QRScan{
		ScannedAt: time.Now().UTC(),
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Location:  req.Location,
	}

	recorded, err := a.scanRepo.RecordScan(ctx, c.Param("tracking_id"), scan)
	if err != nil {
		return storeErrorJSON(c, err, "qr code")
	}

	return c.JSON(
		http.StatusCreated,
		model.BaseResponse{
			Message: "success",
			Data:    recorded,
		},
	)
}

func (a *ScanAPI) listScans(c echo.Context) error {

	ctx := c.Request().Context()

	scans, err := a.scanRepo.ListScans(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "scan")
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "success",
			Data:    scans,
		},
	)
}

func (a *ScanAPI) exportScans(c echo.Context) error {

	ctx := c.Request().Context()

	scans, err := a.scanRepo.ListScans(ctx, c.Param("id"))
	if err != nil {
		return storeErrorJSON(c, err, "scan")
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="scans.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := gocsv.Marshal(&scans, c.Response()); err != nil {
		logrus.WithError(err).Error("scan csv export failed")
		return err
	}

	return nil
}
