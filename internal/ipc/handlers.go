package ipc

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/shaderpaper"
	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(ctl Controller, socket string) echo.HandlerFunc {
	return func(c echo.Context) error {
		st := ctl.Status()
		resp := StatusResponse{
			Status:    "ok",
			Message:   "shaderpaper is running",
			Version:   strings.Trim(shaderpaper.Version, "\n\r "),
			PID:       os.Getpid(),
			Socket:    socket,
			Config:    viper.ConfigFileUsed(),
			Animation: st.Animation,
			Paused:    st.Paused,
			FPS:       st.FPS,
			Frames:    st.Frames,
			Time:      st.Time,
			Surface:   st.Surface,
			Debug:     st.Debug,
			Switches:  st.Switches,
		}
		if p, ok := ctl.(interface{ ControlPath() string }); ok {
			resp.Control = p.ControlPath()
		}
		return c.JSONPretty(http.StatusOK, resp, "  ")
	}
}

// POST /switch
func switchHandler(ctl Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SwitchRequest
		if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Animation) == "" {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: `expected {"animation": "<descriptor>"}`})
		}

		if err := ctl.RequestSwitch(req.Animation); err != nil {
			if errors.Is(err, animation.ErrUnknownAnimation) {
				return c.JSON(http.StatusBadRequest, Response{Status: "error", Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, Response{Status: "error", Message: err.Error()})
		}

		return c.JSON(http.StatusOK, Response{
			Status:  "ok",
			Message: "switch requested",
			Data:    animation.Normalize(req.Animation),
		})
	}
}

// POST /stop
func stopHandler(ctl Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctl.Stop()
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}
