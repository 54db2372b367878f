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
	fireStepsPerSecond = 30.0
	fireLevels         = 37
)

var firePalette = buildFirePalette()

// buildFirePalette ramps black -> red -> orange -> yellow -> white.
func buildFirePalette() [fireLevels]color.RGBA {
	var p [fireLevels]color.RGBA
	stops := []struct {
		at      float64
		r, g, b float64
	}{
		{0.00, 7, 7, 7},
		{0.25, 143, 39, 7},
		{0.50, 223, 87, 7},
		{0.75, 215, 175, 39},
		{1.00, 255, 255, 255},
	}
	for i := range p {
		t := float64(i) / float64(fireLevels-1)
		j := 0
		for j < len(stops)-2 && t > stops[j+1].at {
			j++
		}
		a, b := stops[j], stops[j+1]
		f := (t - a.at) / (b.at - a.at)
		p[i] = color.RGBA{
			R: uint8(a.r + (b.r-a.r)*f),
			G: uint8(a.g + (b.g-a.g)*f),
			B: uint8(a.b + (b.b-a.b)*f),
			A: 255,
		}
	}
	return p
}

// Fire is the classic spreading fire effect. It keeps its own heat map and
// surface and hands that surface back to the pipeline every frame.
type Fire struct {
	rng   *rand.Rand
	heat  []uint8
	w, h  int
	surf  *surface.Surface
	accum float64
}

func NewFire() animation.Animation {
	return newFire(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func newFire(rng *rand.Rand) *Fire {
	return &Fire{rng: rng}
}

func (f *Fire) FragmentShader() string { return pixelShader }
func (f *Fire) Mode() types.RenderMode  { return types.RenderModeImage }

func (f *Fire) resize(w, h int) {
	f.w, f.h = w, h
	f.heat = make([]uint8, w*h)
	for x := 0; x < w; x++ {
		f.heat[(h-1)*w+x] = fireLevels - 1
	}
	f.surf = surface.New(w, h)
}

func (f *Fire) spread(src int) {
	pixel := f.heat[src]
	if pixel == 0 {
		f.heat[src-f.w] = 0
		return
	}
	r := f.rng.IntN(3)
	dst := src - f.w - r + 1
	if dst < 0 || dst >= len(f.heat) {
		return
	}
	f.heat[dst] = pixel - uint8(r&1)
}

func (f *Fire) step() {
	for x := 0; x < f.w; x++ {
		for y := 1; y < f.h; y++ {
			f.spread(y*f.w + x)
		}
	}
}

func (f *Fire) Update(surf *surface.Surface, dt, aspectRatio float64) *surface.Surface {
	w, h := surf.Size()
	if f.surf == nil || w != f.w || h != f.h {
		f.resize(w, h)
	}

	f.accum += dt
	for f.accum >= 1/fireStepsPerSecond {
		f.accum -= 1 / fireStepsPerSecond
		f.step()
	}

	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			f.surf.SetRGBA(x, y, firePalette[f.heat[y*f.w+x]])
		}
	}
	return f.surf
}

func (f *Fire) SetUniforms(p gpu.Program, time, aspectRatio float64) {
	animation.SetCommonUniforms(p, time, aspectRatio)
}
