package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/matjam/shaderpaper/internal/control"
	"github.com/matjam/shaderpaper/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	mu        sync.Mutex
	status    engine.Status
	requested []string
	stops     int
	err       error
}

func (f *fakeController) Status() engine.Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeController) RequestSwitch(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.requested = append(f.requested, name)
	return nil
}

func (f *fakeController) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func serve(t *testing.T, ctl Controller, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	RegisterRoutes(e, ctl, "/run/test.sock")

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestStatusHandler(t *testing.T) {
	ctl := &fakeController{status: engine.Status{Animation: "shaders.plasma", Paused: true, Frames: 42, Surface: "640x360", Switches: 3}}
	rec := serve(t, ctl, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var st StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, "ok", st.Status)
	assert.Equal(t, "shaders.plasma", st.Animation)
	assert.True(t, st.Paused)
	assert.Equal(t, uint64(42), st.Frames)
	assert.Equal(t, "640x360", st.Surface)
	assert.Equal(t, 3, st.Switches)
	assert.Equal(t, "/run/test.sock", st.Socket)
	assert.Equal(t, os.Getpid(), st.PID)
	assert.NotEmpty(t, st.Version)
}

func TestSwitchHandler(t *testing.T) {
	ctl := &fakeController{}
	rec := serve(t, ctl, http.MethodPost, "/switch", `{"animation":"data.pixels.fire"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"data.pixels.fire"}, ctl.requested)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pixels.fire", resp.Data)
}

func TestSwitchHandlerRejects(t *testing.T) {
	ctl := &fakeController{}
	assert.Equal(t, http.StatusBadRequest, serve(t, ctl, http.MethodPost, "/switch", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(t, ctl, http.MethodPost, "/switch", `not json`).Code)

	ctl.err = animation.ErrUnknownAnimation
	assert.Equal(t, http.StatusBadRequest, serve(t, ctl, http.MethodPost, "/switch", `{"animation":"x.y"}`).Code)

	ctl.err = errors.New("disk full")
	assert.Equal(t, http.StatusInternalServerError, serve(t, ctl, http.MethodPost, "/switch", `{"animation":"x.y"}`).Code)
	assert.Empty(t, ctl.requested)
}

func TestStopHandler(t *testing.T) {
	ctl := &fakeController{}
	rec := serve(t, ctl, http.MethodPost, "/stop", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, ctl.stops)
}

type fakeEngine struct {
	stopped bool
}

func (f *fakeEngine) Status() engine.Status { return engine.Status{Animation: "shaders.circular"} }
func (f *fakeEngine) Stop()                 { f.stopped = true }

func TestEngineController(t *testing.T) {
	registry := animation.NewRegistry()
	registry.Register("shaders.plasma", func() animation.Animation { return nil })
	file := control.NewFile(filepath.Join(t.TempDir(), "anim.txt"))
	eng := &fakeEngine{}
	ctl := &EngineController{Engine: eng, Registry: registry, Control: file}

	require.NoError(t, ctl.RequestSwitch(" data.shaders.plasma "))
	got, err := file.Requested()
	require.NoError(t, err)
	assert.Equal(t, "shaders.plasma", got)

	err = ctl.RequestSwitch("shaders.nope")
	assert.ErrorIs(t, err, animation.ErrUnknownAnimation)
	got, _ = file.Requested()
	assert.Equal(t, "shaders.plasma", got)

	assert.Equal(t, "shaders.circular", ctl.Status().Animation)
	assert.Equal(t, file.Path(), ctl.ControlPath())
	ctl.Stop()
	assert.True(t, eng.stopped)
}

func TestSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	assert.Equal(t, filepath.Join("/run/user/1000", SocketName), SocketPath())

	t.Setenv("XDG_RUNTIME_DIR", "")
	assert.Equal(t, filepath.Join(os.TempDir(), SocketName), SocketPath())
}

func TestClientOverSocket(t *testing.T) {
	dir, err := os.MkdirTemp("", "sp")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, SocketName)

	ctl := &fakeController{status: engine.Status{Animation: "pixels.starfield"}}
	srv, err := NewServer(path, ctl)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Close(ctx)
		<-done
	})

	client := NewClient(path)

	st, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "pixels.starfield", st.Animation)

	resp, err := client.Switch("shaders.waves")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []string{"shaders.waves"}, ctl.requested)

	ctl.err = animation.ErrUnknownAnimation
	_, err = client.Switch("shaders.nope")
	assert.Error(t, err)

	_, err = client.Stop()
	require.NoError(t, err)
	assert.Equal(t, 1, ctl.stops)
}

func TestClientNoDaemon(t *testing.T) {
	_, err := NewClient(filepath.Join(t.TempDir(), "missing.sock")).Status()
	assert.Error(t, err)
}
