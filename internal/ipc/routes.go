package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, ctl Controller, socket string) {
	e.GET("/status", statusHandler(ctl, socket))
	e.POST("/switch", switchHandler(ctl))
	e.POST("/stop", stopHandler(ctl))
}
