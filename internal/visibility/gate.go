// Package visibility pauses rendering while a fullscreen application is in
// the foreground.
package visibility

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/types"
)

// Provider is the part of the desktop surface provider the gate needs.
type Provider interface {
	IsForegroundWindowFullscreen() bool
	ShowSurface()
	HideSurface()
}

// Gate is a two state machine, visible and paused. It only changes state
// when ShouldPause is called, which the render loop does once per poll
// interval.
type Gate struct {
	provider Provider
	state    types.VisibilityState
}

// NewGate starts in the visible state; the surface is assumed to be shown
// right after it is attached to the desktop.
func NewGate(provider Provider) *Gate {
	return &Gate{provider: provider, state: types.VisibilityVisible}
}

// ShouldPause queries the foreground window and hides or shows the surface
// when the state flips.
func (g *Gate) ShouldPause() bool {
	if g.provider.IsForegroundWindowFullscreen() {
		if g.state != types.VisibilityPaused {
			log.Info("fullscreen application in foreground, pausing")
			g.provider.HideSurface()
			g.state = types.VisibilityPaused
		}
		return true
	}

	if g.state != types.VisibilityVisible {
		log.Info("fullscreen application gone, resuming")
		g.provider.ShowSurface()
		g.state = types.VisibilityVisible
	}
	return false
}
