package glgpu

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/matjam/shaderpaper/internal/gpu"
)

var swizzleEnums = [...]int32{
	gpu.ChannelRed:   gl.RED,
	gpu.ChannelGreen: gl.GREEN,
	gpu.ChannelBlue:  gl.BLUE,
	gpu.ChannelAlpha: gl.ALPHA,
}

type texture struct {
	id            uint32
	width, height int
	components    int
	format        uint32
}

func newTexture(width, height int, params gpu.TextureParams) (*texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}

	var internal int32
	var format uint32
	switch params.Components {
	case 3:
		internal, format = gl.RGB8, gl.RGB
	case 4:
		internal, format = gl.RGBA8, gl.RGBA
	default:
		return nil, fmt.Errorf("unsupported component count %d", params.Components)
	}

	filter := int32(gl.LINEAR)
	if params.Filter == gpu.FilterNearest {
		filter = gl.NEAREST
	}

	t := &texture{width: width, height: height, components: params.Components, format: format}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	swizzle := [4]int32{}
	for i, ch := range params.Swizzle {
		swizzle[i] = swizzleEnums[ch]
	}
	gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, format, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t, nil
}

func (t *texture) Write(pix []uint8) error {
	if want := t.width * t.height * t.components; len(pix) < want {
		return fmt.Errorf("texture write: got %d bytes, want %d", len(pix), want)
	}
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.width), int32(t.height), t.format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return nil
}

func (t *texture) Bind(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

func (t *texture) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
