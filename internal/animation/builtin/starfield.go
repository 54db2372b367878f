package builtin

import (
	"image/color"
	"math/rand/v2"

	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/matjam/shaderpaper/internal/gpu"
	"github.com/matjam/shaderpaper/internal/surface"
	"github.com/matjam/shaderpaper/internal/types"
)

const (
	starCount = 400
	starSpeed = 0.35 // depth units per second
	starNear  = 0.02
)

type star struct {
	x, y, z float64
}

// Starfield flies through a field of stars drawn straight into the frame
// surface.
type Starfield struct {
	rng   *rand.Rand
	stars []star
}

func NewStarfield() animation.Animation {
	return newStarfield(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newStarfield(rng *rand.Rand) *Starfield {
	s := &Starfield{rng: rng, stars: make([]star, starCount)}
	for i := range s.stars {
		s.stars[i] = s.spawn(rng.Float64())
	}
	return s
}

func (s *Starfield) spawn(z float64) star {
	return star{
		x: s.rng.Float64()*2 - 1,
		y: s.rng.Float64()*2 - 1,
		z: starNear + z*(1-starNear),
	}
}

func (s *Starfield) FragmentShader() string { return pixelShader }
func (s *Starfield) Mode() types.RenderMode  { return types.RenderModeImage }

func (s *Starfield) Update(surf *surface.Surface, dt, aspectRatio float64) *surface.Surface {
	w, h := surf.Size()
	cx, cy := float64(w)/2, float64(h)/2

	for i := range s.stars {
		st := &s.stars[i]
		st.z -= starSpeed * dt
		if st.z <= starNear {
			*st = s.spawn(1)
		}

		px := int(cx + st.x/st.z*cx)
		py := int(cy + st.y/st.z*cy)
		if px < 0 || py < 0 || px >= w || py >= h {
			*st = s.spawn(1)
			continue
		}

		b := uint8(255 * (1 - st.z))
		surf.SetRGBA(px, py, color.RGBA{R: b, G: b, B: b, A: 255})
		if st.z < 0.3 {
			surf.SetRGBA(px+1, py, color.RGBA{R: b, G: b, B: b, A: 255})
		}
	}
	return nil
}

func (s *Starfield) SetUniforms(p gpu.Program, time, aspectRatio float64) {
	animation.SetCommonUniforms(p, time, aspectRatio)
}
