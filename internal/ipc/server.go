package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/matjam/shaderpaper/internal/middleware"
)

type Server struct {
	echo     *echo.Echo
	listener net.Listener
	path     string
}

// NewServer listens on the unix socket at path, replacing a stale socket
// left behind by a previous run.
func NewServer(path string, ctl Controller) (*Server, error) {
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", path, err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Listener = listener

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, ctl, path)

	return &Server{echo: e, listener: listener, path: path}, nil
}

func (s *Server) Path() string { return s.path }

// Serve blocks until the server is closed.
func (s *Server) Serve() error {
	log.Debugf("socket server listening on %s", s.path)
	server := new(http.Server)
	if err := s.echo.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("socket server: %w", err)
	}
	return nil
}

func (s *Server) Close(ctx context.Context) error {
	err := s.echo.Shutdown(ctx)
	_ = os.Remove(s.path)
	return err
}
