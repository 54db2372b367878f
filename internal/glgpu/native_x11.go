//go:build linux && !wayland

package glgpu

import "github.com/go-gl/glfw/v3.3/glfw"

func nativeHandle(w *glfw.Window) uintptr {
	return uintptr(w.GetX11Window())
}
