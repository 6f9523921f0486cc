package api

import (
	"net/http"

	"github.com/brev-dev/PiFan/internal/curves"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func registerCurveEndpoints(rest *echo.Echo) {
	group := rest.Group("/curve")

	group.GET("/", getCurves)
	group.GET("/:"+urlParamId+"/", getCurve)
}

func getCurves(c echo.Context) error {
	data := reprint.This(curves.SpeedCurveMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getCurve(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := curves.SpeedCurveMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	}
}
