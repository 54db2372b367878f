// Package host owns the active animation and swaps it when the control
// source asks for a different one.
package host

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/matjam/shaderpaper/internal/gpu"
)

// ProgramBuilder compiles a fragment shader against the full screen quad.
type ProgramBuilder interface {
	BuildProgram(fragmentSource string) (gpu.Program, error)
}

// ControlSource reports the most recently requested descriptor.
type ControlSource interface {
	Requested() (string, error)
}

// Host holds exactly one animation instance and the GPU program built from
// its fragment shader. All methods must be called from the render thread.
type Host struct {
	registry *animation.Registry
	builder  ProgramBuilder
	control  ControlSource

	active   string
	instance animation.Animation
	program  gpu.Program

	// last requested value that failed to load; not retried until the
	// control source changes
	rejected string
	switches int
}

func New(registry *animation.Registry, builder ProgramBuilder, control ControlSource) *Host {
	return &Host{
		registry: registry,
		builder:  builder,
		control:  control,
	}
}

// Select instantiates the named animation and builds its program. The swap
// only happens once both succeed; on error the previous animation stays
// active.
func (h *Host) Select(name string) error {
	name = animation.Normalize(name)

	factory, err := h.registry.Lookup(name)
	if err != nil {
		return err
	}

	instance := factory()
	if instance == nil {
		return fmt.Errorf("animation %q: factory returned nil", name)
	}

	program, err := h.builder.BuildProgram(instance.FragmentShader())
	if err != nil {
		return fmt.Errorf("building program for %q: %w", name, err)
	}

	oldProgram, oldInstance := h.program, h.instance
	h.active, h.instance, h.program = name, instance, program
	h.rejected = ""
	h.switches++

	if oldProgram != nil {
		oldProgram.Release()
	}
	if c, ok := oldInstance.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Warnf("closing animation: %v", err)
		}
	}
	return nil
}

// PollForSwitch reads the control source and selects the requested
// animation if it differs from the active one. Failures are logged and the
// current animation keeps running. It reports whether a switch happened.
func (h *Host) PollForSwitch() bool {
	requested, err := h.control.Requested()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Errorf("control file missing: %v", err)
		} else {
			log.Errorf("reading control source: %v", err)
		}
		return false
	}

	requested = animation.Normalize(requested)
	if requested == "" || requested == h.active || requested == h.rejected {
		return false
	}

	log.Infof("New animation selected: %s", requested)
	if err := h.Select(requested); err != nil {
		h.rejected = requested
		log.Errorf("switching to %s failed, keeping %s: %v", requested, h.active, err)
		return false
	}
	return true
}

// Active returns the descriptor of the running animation.
func (h *Host) Active() string { return h.active }

func (h *Host) Animation() animation.Animation { return h.instance }

func (h *Host) Program() gpu.Program { return h.program }

// Switches counts successful selections, including the initial one.
func (h *Host) Switches() int { return h.switches }

// Close releases the program of the active animation.
func (h *Host) Close() {
	if h.program != nil {
		h.program.Release()
		h.program = nil
	}
	if c, ok := h.instance.(io.Closer); ok {
		c.Close()
	}
	h.instance = nil
}
