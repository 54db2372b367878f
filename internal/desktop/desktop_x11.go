//go:build linux

package desktop

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var x11AtomNames = []string{
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_STATE",
	"_NET_WM_STATE_BELOW",
	"_NET_WM_STATE_STICKY",
	"_NET_WM_STATE_SKIP_TASKBAR",
	"_NET_WM_STATE_SKIP_PAGER",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_ACTIVE_WINDOW",
}

type x11Provider struct {
	conn   *xgb.Conn
	root   xproto.Window
	window xproto.Window
	atoms  map[string]xproto.Atom
}

func newPlatformProvider() (Provider, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, fmt.Errorf("no X11 display: %w", ErrUnsupported)
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connecting to X11: %w", err)
	}

	p := &x11Provider{
		conn:  conn,
		root:  xproto.Setup(conn).DefaultScreen(conn).Root,
		atoms: map[string]xproto.Atom{},
	}
	for _, name := range x11AtomNames {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("interning %s: %w", name, err)
		}
		p.atoms[name] = reply.Atom
	}
	return p, nil
}

func atomBytes(atoms ...xproto.Atom) []byte {
	buf := make([]byte, 4*len(atoms))
	for i, a := range atoms {
		xgb.Put32(buf[i*4:], uint32(a))
	}
	return buf
}

func containsAtom(value []byte, atom xproto.Atom) bool {
	for i := 0; i+4 <= len(value); i += 4 {
		if xproto.Atom(xgb.Get32(value[i:])) == atom {
			return true
		}
	}
	return false
}

// Attach marks the window as the desktop so the window manager keeps it
// below everything, sticky on all workspaces and out of the taskbar.
func (p *x11Provider) Attach(window uintptr) error {
	if window == 0 {
		return fmt.Errorf("attach: no native window handle")
	}
	win := xproto.Window(window)

	windowType := atomBytes(p.atoms["_NET_WM_WINDOW_TYPE_DESKTOP"])
	if err := xproto.ChangePropertyChecked(p.conn, xproto.PropModeReplace, win,
		p.atoms["_NET_WM_WINDOW_TYPE"], xproto.AtomAtom, 32, 1, windowType).Check(); err != nil {
		return fmt.Errorf("attach: setting window type: %w", err)
	}

	state := atomBytes(
		p.atoms["_NET_WM_STATE_BELOW"],
		p.atoms["_NET_WM_STATE_STICKY"],
		p.atoms["_NET_WM_STATE_SKIP_TASKBAR"],
		p.atoms["_NET_WM_STATE_SKIP_PAGER"],
	)
	if err := xproto.ChangePropertyChecked(p.conn, xproto.PropModeReplace, win,
		p.atoms["_NET_WM_STATE"], xproto.AtomAtom, 32, uint32(len(state)/4), state).Check(); err != nil {
		return fmt.Errorf("attach: setting window state: %w", err)
	}

	p.window = win
	p.ShowSurface()
	log.Debugf("attached X11 window 0x%x as desktop", window)
	return nil
}

func (p *x11Provider) IsForegroundWindowFullscreen() bool {
	reply, err := xproto.GetProperty(p.conn, false, p.root, p.atoms["_NET_ACTIVE_WINDOW"],
		xproto.AtomWindow, 0, 1).Reply()
	if err != nil || len(reply.Value) < 4 {
		return false
	}

	active := xproto.Window(xgb.Get32(reply.Value))
	if active == 0 || active == p.window {
		return false
	}

	state, err := xproto.GetProperty(p.conn, false, active, p.atoms["_NET_WM_STATE"],
		xproto.AtomAtom, 0, 64).Reply()
	if err != nil {
		log.Debugf("reading _NET_WM_STATE of 0x%x: %v", active, err)
		return false
	}
	return containsAtom(state.Value, p.atoms["_NET_WM_STATE_FULLSCREEN"])
}

func (p *x11Provider) ShowSurface() {
	if p.window == 0 {
		return
	}
	xproto.MapWindow(p.conn, p.window)
	xproto.ConfigureWindow(p.conn, p.window, xproto.ConfigWindowStackMode, []uint32{xproto.StackModeBelow})
}

func (p *x11Provider) HideSurface() {
	if p.window != 0 {
		xproto.UnmapWindow(p.conn, p.window)
	}
}

// DetachAndRestore unmaps the window. X11 desktops draw their own wallpaper
// underneath, so there is nothing to restore.
func (p *x11Provider) DetachAndRestore() error {
	if p.window == 0 {
		return nil
	}
	err := xproto.UnmapWindowChecked(p.conn, p.window).Check()
	p.window = 0
	return err
}

func (p *x11Provider) Close() error {
	p.conn.Close()
	return nil
}
