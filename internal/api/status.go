package api

import (
	"net/http"

	"github.com/brev-dev/PiFan/internal/controller"
	"github.com/labstack/echo/v4"
)

func registerStatusEndpoints(rest *echo.Echo, ctrl controller.FanController) {
	group := rest.Group("/status")

	group.GET("/", func(c echo.Context) error {
		return getStatus(c, ctrl)
	})
}

func getStatus(c echo.Context, ctrl controller.FanController) error {
	data := struct {
		controller.Status
		controller.Statistics
	}{
		Status:     ctrl.Status(),
		Statistics: ctrl.GetStatistics(),
	}
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}
