package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/netoar/fyyur/internal/monitoring"
)

// Metrics counts requests by matched route. Unmatched paths share the
// route label "unmatched" so arbitrary URLs cannot grow the label set.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			route := c.Path()
			if route == "" || route == "/*" {
				route = "unmatched"
			}
			monitoring.RecordRequest(c.Request().Method, route, strconv.Itoa(status))
			return err
		}
	}
}
