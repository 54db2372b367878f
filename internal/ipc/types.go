package ipc

import (
	"os"
	"path/filepath"

	"github.com/matjam/shaderpaper/internal/engine"
)

const SocketName = "shaderpaper.sock"

// Controller is what the IPC handlers drive. Status and Stop must be safe to
// call from the server goroutine while the render loop runs.
type Controller interface {
	Status() engine.Status
	RequestSwitch(name string) error
	Stop()
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type SwitchRequest struct {
	Animation string `json:"animation"`
}

type StatusResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	Version   string  `json:"version"`
	PID       int     `json:"pid"`
	Socket    string  `json:"socket"`
	Config    string  `json:"config"`
	Control   string  `json:"control,omitempty"`
	Animation string  `json:"animation"`
	Paused    bool    `json:"paused"`
	FPS       float64 `json:"fps"`
	Frames    uint64  `json:"frames"`
	Time      float64 `json:"time"`
	Surface   string  `json:"surface"`
	Debug     bool    `json:"debug"`
	Switches  int     `json:"switches"`
}

// SocketPath is the unix socket the daemon listens on: $XDG_RUNTIME_DIR when
// set, the temp dir otherwise.
func SocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, SocketName)
}
