package engine

import (
	"fmt"
	"image"

	"github.com/matjam/shaderpaper/internal/surface"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay draws the debug FPS counter onto the frame surface.
type Overlay struct {
	face *basicfont.Face
	src  image.Image
}

func NewOverlay() *Overlay {
	return &Overlay{
		face: basicfont.Face7x13,
		src:  image.White,
	}
}

// Draw writes "FPS: n" starting at the horizontal middle of the top row.
func (o *Overlay) Draw(s *surface.Surface, fps float64) {
	d := &font.Drawer{
		Dst:  s,
		Src:  o.src,
		Face: o.face,
		Dot:  fixed.P(s.Width()/2, o.face.Ascent),
	}
	d.DrawString(fmt.Sprintf("FPS: %.2f", fps))
}
