package apis

import (
	"net/http"
	"promo-tracking-backend/cmd/event-automation/model"
	"strconv"

	"github.com/labstack/echo/v4"
)

// APIKeyAuth rejects requests whose X-API-Key header does not match key.
// An empty key disables the check. When the caller supplies X-User-ID it
// becomes the request principal used as the fallback owner on creates.
func APIKeyAuth(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key != "" && c.Request().Header.Get("X-API-Key") != key {
				return c.JSON(
					http.StatusUnauthorized,
					model.BaseResponse{
						Message: "unauthorized",
					},
				)
			}

			if uid := c.Request().Header.Get("X-User-ID"); uid != "" {
				if n, err := strconv.Atoi(uid); err == nil {
					c.Set("user_id", n)
				}
			}

			return next(c)
		}
	}
}

func principalUserID(c echo.Context) (int, bool) {
	if v, ok := c.Get("user_id").(int); ok {
		return v, true
	}
	return 0, false
}
