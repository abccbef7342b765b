package apis

import (
	"errors"
	"fmt"
	"net/http"
	"promo-tracking-backend/cmd/qr-tracking/model"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var validate = validator.New()

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", s)
}

// storeErrorJSON maps a repository error onto the HTTP contract. Clients
// only ever see a stable message; driver detail stays in the log.
func storeErrorJSON(c echo.Context, err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: entity + " not found",
			},
		)
	}

	logrus.WithError(err).WithField("entity", entity).Error("store operation failed")

	return c.JSON(
		http.StatusInternalServerError,
		model.BaseResponse{
			Message: "internal error",
		},
	)
}

func badRequestJSON(c echo.Context, message string) error {
	return c.JSON(
		http.StatusBadRequest,
		model.BaseResponse{
			Message: message,
		},
	)
}
