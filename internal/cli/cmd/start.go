package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/animation"
	_ "github.com/matjam/shaderpaper/internal/animation/builtin"
	"github.com/matjam/shaderpaper/internal/cli/cmd/utils"
	"github.com/matjam/shaderpaper/internal/control"
	"github.com/matjam/shaderpaper/internal/desktop"
	"github.com/matjam/shaderpaper/internal/engine"
	"github.com/matjam/shaderpaper/internal/glgpu"
	"github.com/matjam/shaderpaper/internal/host"
	"github.com/matjam/shaderpaper/internal/ipc"
	"github.com/matjam/shaderpaper/internal/visibility"
	"github.com/spf13/viper"
)

// ControlFile is the control store named by the config, resolved against
// the data directory.
func ControlFile() *control.File {
	return control.NewFile(utils.ResolvePath(viper.GetString("control_file"), utils.DataDir()))
}

// initialAnimation picks what to start with. An explicit override wins and
// is written to the control file so the first poll does not switch away
// from it; otherwise a registered value already in the control file is
// honoured. Unknown names are never written, so a typo cannot break the
// next start.
func initialAnimation(ctl *control.File, registry *animation.Registry, override string) (string, error) {
	if override != "" {
		override = animation.Normalize(override)
		if !registry.Has(override) {
			return "", fmt.Errorf("%w: %q", animation.ErrUnknownAnimation, override)
		}
		if err := ctl.Request(override); err != nil {
			log.Warnf("writing control file: %v", err)
		}
		return override, nil
	}

	requested, err := ctl.Requested()
	requested = animation.Normalize(requested)
	switch {
	case err == nil && registry.Has(requested):
		return requested, nil
	case err == nil && requested != "":
		log.Warnf("control file names unknown animation %q, using the configured default", requested)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		log.Warnf("reading control file: %v", err)
	}

	name := animation.Normalize(viper.GetString("animation"))
	if err := ctl.Request(name); err != nil {
		log.Warnf("writing control file: %v", err)
	}
	return name, nil
}

// StartEngine opens the window, attaches it to the desktop and runs the
// render loop until it is stopped.
func StartEngine(override string) error {
	log.Infof("StartEngine() started in PID: %d", os.Getpid())

	socket := ipc.SocketPath()
	if _, err := ipc.NewClient(socket).Status(); err == nil {
		log.Infof("shaderpaper is already running, exiting")
		return nil
	}

	ctl := ControlFile()
	initial, err := initialAnimation(ctl, animation.Default, override)
	if err != nil {
		return err
	}
	log.Infof("Control file: %s", ctl.Path())

	device, err := glgpu.New(glgpu.Config{})
	if err != nil {
		return fmt.Errorf("opening window: %w", err)
	}
	defer device.Close()

	provider := desktop.NewOrNull()
	defer provider.Close()
	if err := provider.Attach(device.NativeHandle()); err != nil {
		return fmt.Errorf("attaching to the desktop: %w", err)
	}
	device.Show()
	defer func() {
		if err := provider.DetachAndRestore(); err != nil {
			log.Errorf("restoring desktop: %v", err)
		}
	}()

	h := host.New(animation.Default, device, ctl)
	if err := h.Select(initial); err != nil {
		return fmt.Errorf("loading animation %q: %w", initial, err)
	}
	defer h.Close()
	log.Infof("Initial animation: %s", h.Active())

	clock := engine.NewFrameClock(viper.GetInt("framerate_limit"))
	log.Infof("Frame rate limit: %d", clock.Framerate())

	eng, err := engine.New(engine.Options{
		Device:       device,
		Host:         h,
		Gate:         visibility.NewGate(provider),
		Clock:        clock,
		PollInterval: viper.GetFloat64("poll_interval"),
		BaseWidth:    viper.GetInt("base_width"),
		BaseHeight:   viper.GetInt("base_height"),
		Debug:        viper.GetBool("debug"),
	})
	if err != nil {
		return err
	}

	server, err := ipc.NewServer(socket, &ipc.EngineController{
		Engine:   eng,
		Registry: animation.Default,
		Control:  ctl,
	})
	if err != nil {
		log.Warnf("control server disabled: %v", err)
	} else {
		go func() {
			log.Infof("Starting socket server")
			if err := server.Serve(); err != nil {
				log.Error(err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			server.Close(shutdownCtx)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eng.Run(ctx); err != nil {
		return fmt.Errorf("render loop: %w", err)
	}
	log.Infof("shaderpaper exited")
	return nil
}

// SetupRotatingLogger sends all logging to the rotating file in log_dir.
func SetupRotatingLogger() {
	dir := utils.ResolvePath(viper.GetString("log_dir"), utils.DataDir())
	if dir == "" {
		dir = utils.DataDir()
	}

	writer, err := utils.NewRotatingLog(dir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.SetOutput(writer)
	if !viper.GetBool("debug") {
		log.SetLevel(log.InfoLevel)
	}
}
