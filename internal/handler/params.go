package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// confirmQuery reports whether the destructive-action confirmation flag is
// set on the request.
func confirmQuery(c echo.Context) bool {
	return c.QueryParam("confirm") == "true"
}
