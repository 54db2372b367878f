// Package surface provides the CPU frame buffer animations draw into,
// stored in the window's BGRA byte order.
package surface

import (
	"image"
	"image/color"
)

// Surface is the CPU side frame buffer animations draw into. Pixels are
// stored the way the desktop window pixel format keeps them: 4 bytes per
// pixel in B, G, R, A order. It implements draw.Image so the usual image
// and font drawing helpers work on it directly.
type Surface struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// New allocates a width x height surface. Non-positive dimensions are
// clamped to 1 so a surface is never empty.
func New(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Surface{
		Pix:    make([]uint8, width*height*4),
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}

func (s *Surface) Bounds() image.Rectangle { return s.Rect }

func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

func (s *Surface) Width() int  { return s.Rect.Dx() }
func (s *Surface) Height() int { return s.Rect.Dy() }

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (int, int) {
	return s.Rect.Dx(), s.Rect.Dy()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (s *Surface) PixOffset(x, y int) int {
	return (y-s.Rect.Min.Y)*s.Stride + (x-s.Rect.Min.X)*4
}

func (s *Surface) At(x, y int) color.Color {
	return s.RGBAAt(x, y)
}

func (s *Surface) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(s.Rect)) {
		return color.RGBA{}
	}
	i := s.PixOffset(x, y)
	p := s.Pix[i : i+4 : i+4]
	return color.RGBA{R: p[2], G: p[1], B: p[0], A: p[3]}
}

func (s *Surface) Set(x, y int, c color.Color) {
	s.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

func (s *Surface) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{x, y}.In(s.Rect)) {
		return
	}
	i := s.PixOffset(x, y)
	p := s.Pix[i : i+4 : i+4]
	p[0] = c.B
	p[1] = c.G
	p[2] = c.R
	p[3] = c.A
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c color.RGBA) {
	if len(s.Pix) < 4 {
		return
	}
	s.Pix[0], s.Pix[1], s.Pix[2], s.Pix[3] = c.B, c.G, c.R, c.A
	for filled := 4; filled < len(s.Pix); filled *= 2 {
		copy(s.Pix[filled:], s.Pix[:filled])
	}
}

// Clear fills the surface with opaque black.
func (s *Surface) Clear() {
	s.Fill(color.RGBA{A: 0xff})
}
