// Package glgpu implements gpu.Device on an OpenGL 3.3 core context owned by
// a borderless GLFW window.
package glgpu

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/matjam/shaderpaper/internal/gpu"
)

type Config struct {
	Title string
	// Width and Height default to the primary monitor's video mode.
	Width  int
	Height int
}

// Device must be created and used from a single goroutine; New locks it to
// the current OS thread.
type Device struct {
	win *glfw.Window
	vbo uint32
}

var _ gpu.Device = (*Device)(nil)

func New(cfg Config) (*Device, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Focused, glfw.False)
	glfw.WindowHint(glfw.FocusOnShow, glfw.False)
	glfw.WindowHint(glfw.Floating, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False) // shown after it is parented to the desktop

	if cfg.Width <= 0 || cfg.Height <= 0 {
		vidMode := glfw.GetPrimaryMonitor().GetVideoMode()
		cfg.Width, cfg.Height = vidMode.Width, vidMode.Height
	}
	if cfg.Title == "" {
		cfg.Title = "shaderpaper"
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window failed: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init failed: %w", err)
	}
	log.Debugf("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	fbw, fbh := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(0, 0, 0, 1)

	d := &Device{win: win}
	d.vbo = newQuadBuffer()
	return d, nil
}

// Show maps the window. Call it once the window has been attached to the
// desktop.
func (d *Device) Show() { d.win.Show() }

// NativeHandle is the platform window handle (HWND or X11 window id), or 0
// where the platform has none.
func (d *Device) NativeHandle() uintptr { return nativeHandle(d.win) }

func (d *Device) BuildProgram(fragmentSource string) (gpu.Program, error) {
	p, err := newProgram(d.vbo, fragmentSource)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *Device) NewTexture(width, height int, params gpu.TextureParams) (gpu.Texture, error) {
	t, err := newTexture(width, height, params)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (d *Device) Present() error {
	if glfw.GetCurrentContext() == nil {
		return fmt.Errorf("present: %w", gpu.ErrContextLost)
	}
	d.win.SwapBuffers()
	if code := gl.GetError(); code == gl.OUT_OF_MEMORY {
		return fmt.Errorf("present: gl error 0x%x: %w", code, gpu.ErrContextLost)
	} else if code != gl.NO_ERROR {
		return fmt.Errorf("present: gl error 0x%x", code)
	}
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func (d *Device) PollEvents() { glfw.PollEvents() }

func (d *Device) FramebufferSize() (int, int) { return d.win.GetFramebufferSize() }

func (d *Device) ShouldClose() bool { return d.win.ShouldClose() }

func (d *Device) Close() {
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	d.win.Destroy()
	glfw.Terminate()
}
