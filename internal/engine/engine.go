// Package engine runs the frame loop: it keeps the clock, polls for
// animation switches and fullscreen apps, and pushes each frame through the
// GPU.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/gpu"
	"github.com/matjam/shaderpaper/internal/host"
	"github.com/matjam/shaderpaper/internal/surface"
	"github.com/matjam/shaderpaper/internal/texture"
	"github.com/matjam/shaderpaper/internal/types"
)

const DefaultPollInterval = 2.0

// Pauser decides, at each poll boundary, whether frames should be skipped.
type Pauser interface {
	ShouldPause() bool
}

type Options struct {
	Device gpu.Device
	Host   *host.Host
	Gate   Pauser
	Clock  Clock

	PollInterval float64 // seconds; DefaultPollInterval when <= 0
	BaseWidth    int
	BaseHeight   int
	Debug        bool
}

// RenderLoopState is everything the loop carries from one tick to the next.
type RenderLoopState struct {
	Time          float64 // seconds since the loop started, never reset
	DT            float64
	PollCountdown float64
	Paused        bool
	AspectRatio   float64
	Surface       *surface.Surface
	Ticks         uint64
	Frames        uint64 // ticks that ended in a draw
}

// Status is a copy of the loop state safe to read from other goroutines.
type Status struct {
	Animation string  `json:"animation"`
	Paused    bool    `json:"paused"`
	FPS       float64 `json:"fps"`
	Frames    uint64  `json:"frames"`
	Time      float64 `json:"time"`
	Debug     bool    `json:"debug"`
	Surface   string  `json:"surface"`
	Switches  int     `json:"switches"`
}

type Engine struct {
	device  gpu.Device
	host    *host.Host
	gate    Pauser
	clock   Clock
	overlay *Overlay

	pollInterval float64
	debug        bool
	state        RenderLoopState

	running atomic.Bool

	mu     sync.Mutex
	status Status
}

func New(opts Options) (*Engine, error) {
	switch {
	case opts.Device == nil:
		return nil, errors.New("engine: no device")
	case opts.Host == nil || opts.Host.Animation() == nil:
		return nil, errors.New("engine: no animation selected")
	case opts.Gate == nil:
		return nil, errors.New("engine: no visibility gate")
	case opts.Clock == nil:
		return nil, errors.New("engine: no clock")
	}

	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.BaseWidth <= 0 || opts.BaseHeight <= 0 {
		return nil, fmt.Errorf("engine: invalid base size %dx%d", opts.BaseWidth, opts.BaseHeight)
	}

	w, h := opts.Device.FramebufferSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("engine: invalid framebuffer size %dx%d", w, h)
	}
	aspect := float64(w) / float64(h)

	e := &Engine{
		device:       opts.Device,
		host:         opts.Host,
		gate:         opts.Gate,
		clock:        opts.Clock,
		overlay:      NewOverlay(),
		pollInterval: opts.PollInterval,
		debug:        opts.Debug,
		state: RenderLoopState{
			PollCountdown: opts.PollInterval,
			AspectRatio:   aspect,
			Surface:       surface.New(int(float64(opts.BaseWidth)*aspect), opts.BaseHeight),
		},
	}
	e.running.Store(true)
	e.publish()
	return e, nil
}

// Tick advances the loop by dt seconds. While paused the clock and poll
// countdown keep running but nothing is drawn.
func (e *Engine) Tick(dt float64) error {
	s := &e.state
	s.Surface.Clear()

	s.DT = dt
	s.Time += dt
	s.PollCountdown -= dt
	s.Ticks++

	if s.PollCountdown <= 0 {
		s.PollCountdown = e.pollInterval
		e.host.PollForSwitch()
		s.Paused = e.gate.ShouldPause()
	}

	var err error
	if !s.Paused {
		err = e.renderFrame()
	}
	e.publish()
	return err
}

func (e *Engine) renderFrame() error {
	s := &e.state
	anim := e.host.Animation()

	if replacement := anim.Update(s.Surface, s.DT, s.AspectRatio); replacement != nil {
		s.Surface = replacement
	}

	mode := anim.Mode()
	if e.debug {
		e.overlay.Draw(s.Surface, e.clock.FPS())
		mode = types.RenderModeImage
	}

	tex, err := texture.Upload(e.device, s.Surface, mode)
	if err != nil {
		return fmt.Errorf("uploading frame: %w", err)
	}
	defer tex.Release()

	program := e.host.Program()
	program.Use()
	tex.Bind(0)
	program.SetInt("tex", 0)
	anim.SetUniforms(program, s.Time, s.AspectRatio)
	program.Draw()
	s.Frames++

	if err := e.device.Present(); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	return nil
}

// Run ticks until Stop is called, ctx is cancelled or the window closes.
// Frame errors are logged and skipped, except a lost GPU context which ends
// the loop with that error. An engine runs once; Stop before Run makes Run
// return without ticking.
func (e *Engine) Run(ctx context.Context) error {
	defer e.running.Store(false)

	log.Infof("render loop started with %s", e.host.Active())
	for e.running.Load() {
		if ctx.Err() != nil || e.device.ShouldClose() {
			break
		}

		dt := e.clock.Tick()
		if err := e.Tick(dt); err != nil {
			if errors.Is(err, gpu.ErrContextLost) {
				return err
			}
			log.Errorf("frame failed: %v", err)
		}
		e.device.PollEvents()
	}
	log.Info("render loop stopped")
	return nil
}

// Stop asks Run to return after the current tick. Safe to call from any
// goroutine.
func (e *Engine) Stop() {
	e.running.Store(false)
}

func (e *Engine) Running() bool { return e.running.Load() }

func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Engine) publish() {
	w, h := e.state.Surface.Size()
	st := Status{
		Animation: e.host.Active(),
		Paused:    e.state.Paused,
		FPS:       e.clock.FPS(),
		Frames:    e.state.Frames,
		Time:      e.state.Time,
		Debug:     e.debug,
		Surface:   fmt.Sprintf("%dx%d", w, h),
		Switches:  e.host.Switches(),
	}

	e.mu.Lock()
	e.status = st
	e.mu.Unlock()
}
