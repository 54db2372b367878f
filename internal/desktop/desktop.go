// Package desktop places the render window behind the desktop icons and
// answers questions about the foreground window.
package desktop

import (
	"errors"

	"github.com/charmbracelet/log"
)

var ErrUnsupported = errors.New("desktop embedding is not supported on this platform")

type Provider interface {
	// Attach reparents the native window so it draws as the wallpaper.
	Attach(window uintptr) error
	IsForegroundWindowFullscreen() bool
	ShowSurface()
	HideSurface()
	// DetachAndRestore undoes Attach and puts the user's static wallpaper
	// back.
	DetachAndRestore() error
	Close() error
}

// New returns the provider for the running platform, or ErrUnsupported.
func New() (Provider, error) {
	return newPlatformProvider()
}

// NewOrNull falls back to a Null provider when the platform has no
// desktop integration, so the engine can still run in a plain window.
func NewOrNull() Provider {
	p, err := New()
	if err != nil {
		log.Warnf("%v, rendering to a normal window", err)
		return &Null{}
	}
	return p
}

// Null never reports a fullscreen window and ignores show and hide.
type Null struct {
	Shown bool
}

func (n *Null) Attach(uintptr) error               { n.Shown = true; return nil }
func (n *Null) IsForegroundWindowFullscreen() bool { return false }
func (n *Null) ShowSurface()                       { n.Shown = true }
func (n *Null) HideSurface()                       { n.Shown = false }
func (n *Null) DetachAndRestore() error            { n.Shown = false; return nil }
func (n *Null) Close() error                       { return nil }
