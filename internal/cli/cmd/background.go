//go:build !windows

package cmd

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/cli/cmd/utils"
	"github.com/sevlyar/go-daemon"
)

// Daemonize forks the process into the background. It returns true in the
// parent, which should exit, and false in the child. release must be
// called by the child before it exits.
func Daemonize() (parent bool, release func(), err error) {
	dir := utils.DataDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, nil, err
	}

	ctx := &daemon.Context{
		PidFileName: filepath.Join(dir, utils.AppName+".pid"),
		PidFilePerm: 0644,
		Umask:       027,
		Args:        os.Args,
	}

	child, err := ctx.Reborn()
	if err != nil {
		return false, nil, err
	}
	if child != nil {
		log.Infof("shaderpaper started in the background, PID %d", child.Pid)
		return true, func() {}, nil
	}

	return false, func() {
		if err := ctx.Release(); err != nil {
			log.Warnf("releasing pid file: %v", err)
		}
	}, nil
}

func InBackground() bool { return daemon.WasReborn() }
