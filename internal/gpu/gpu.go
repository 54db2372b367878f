// Package gpu describes the small slice of a graphics API the frame pipeline
// needs: a device that can build full screen quad programs, allocate
// textures and present frames.
package gpu

import "errors"

// ErrContextLost is returned (wrapped) by a device once its context or window
// is gone. The render loop treats it as fatal.
var ErrContextLost = errors.New("gpu context lost")

type Filter int

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Channel names a source component of a texel.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
	ChannelAlpha
)

// Swizzle says, for each output component (R, G, B, A), which stored
// component the sampler returns.
type Swizzle [4]Channel

var (
	SwizzleRGBA = Swizzle{ChannelRed, ChannelGreen, ChannelBlue, ChannelAlpha}
	SwizzleBGRA = Swizzle{ChannelBlue, ChannelGreen, ChannelRed, ChannelAlpha}
)

// Apply returns what a sampler configured with s reads from a stored texel.
func (s Swizzle) Apply(texel [4]uint8) [4]uint8 {
	var out [4]uint8
	for i, ch := range s {
		out[i] = texel[ch]
	}
	return out
}

type TextureParams struct {
	Components int
	Filter     Filter
	Swizzle    Swizzle
}

// Texture is a GPU texture. Its lifetime is owned by whoever created it and
// it must be released exactly once.
type Texture interface {
	// Write uploads width*height*Components bytes of pixel data.
	Write(pix []uint8) error
	// Bind attaches the texture to the given texture unit.
	Bind(unit int)
	Release()
}

// Program is a linked shader program together with the vertex array that
// feeds it the full screen quad.
type Program interface {
	Use()
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	// Draw renders the quad as a 4 vertex triangle strip.
	Draw()
	Release()
}

type Device interface {
	BuildProgram(fragmentSource string) (Program, error)
	NewTexture(width, height int, params TextureParams) (Texture, error)
	// Present swaps the back buffer to the screen.
	Present() error
	PollEvents()
	FramebufferSize() (int, int)
	ShouldClose() bool
	Close()
}
