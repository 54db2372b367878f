// Package texture turns a frame surface into a GPU texture.
package texture

import (
	"fmt"

	"github.com/matjam/shaderpaper/internal/gpu"
	"github.com/matjam/shaderpaper/internal/surface"
	"github.com/matjam/shaderpaper/internal/types"
)

type Allocator interface {
	NewTexture(width, height int, params gpu.TextureParams) (gpu.Texture, error)
}

// Params returns the texture parameters used for a render mode.
//
// Surfaces keep their pixels in the window's BGRA byte order while textures
// are uploaded as RGBA, so image mode swizzles the channels back and turns
// off interpolation to keep pixel art crisp. Clear mode leaves everything at
// the defaults.
func Params(mode types.RenderMode) gpu.TextureParams {
	params := gpu.TextureParams{
		Components: 4,
		Filter:     gpu.FilterLinear,
		Swizzle:    gpu.SwizzleRGBA,
	}
	if mode != types.RenderModeClear {
		params.Filter = gpu.FilterNearest
		params.Swizzle = gpu.SwizzleBGRA
	}
	return params
}

// Upload creates a texture the size of s and writes its raw pixels into it.
// The caller owns the texture and must release it once the frame is drawn.
func Upload(alloc Allocator, s *surface.Surface, mode types.RenderMode) (gpu.Texture, error) {
	w, h := s.Size()
	tex, err := alloc.NewTexture(w, h, Params(mode))
	if err != nil {
		return nil, fmt.Errorf("creating %dx%d texture: %w", w, h, err)
	}
	if err := tex.Write(s.Pix); err != nil {
		tex.Release()
		return nil, fmt.Errorf("writing texture: %w", err)
	}
	return tex, nil
}
