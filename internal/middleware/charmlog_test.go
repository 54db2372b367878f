package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLevel := log.GetLevel()
	log.SetOutput(&buf)
	log.SetLevel(log.DebugLevel)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(prevLevel)
	})
	return &buf
}

func TestCharmLogLogsRequest(t *testing.T) {
	buf := captureLog(t)

	e := echo.New()
	e.Use(CharmLog())
	e.GET("/status", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "ipc request")
	assert.Contains(t, buf.String(), "/status")
}

func TestCharmLogHandlesErrors(t *testing.T) {
	buf := captureLog(t)

	e := echo.New()
	e.Use(CharmLog())
	e.POST("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, errors.New("no"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/boom", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), "ipc request failed")
}
