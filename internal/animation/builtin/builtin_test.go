package builtin

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/matjam/shaderpaper/internal/surface"
	"github.com/matjam/shaderpaper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, name := range []string{
		"shaders.circular",
		"shaders.plasma",
		"shaders.waves",
		"pixels.starfield",
		"pixels.fire",
	} {
		t.Run(name, func(t *testing.T) {
			f, err := animation.Default.Lookup(name)
			require.NoError(t, err)

			a := f()
			assert.True(t, a.Mode().Valid())
			src := a.FragmentShader()
			assert.True(t, strings.HasPrefix(src, "#version 330 core"))
			assert.Contains(t, src, "uniform sampler2D tex;")
			assert.Contains(t, src, "void main()")

			// instances are independent and the source is stable
			assert.Equal(t, src, f().FragmentShader())
		})
	}
}

func TestShaderAnimationsLeaveSurfaceAlone(t *testing.T) {
	s := surface.New(4, 4)
	s.Clear()
	before := append([]uint8(nil), s.Pix...)

	a := NewPlasma()
	assert.Equal(t, types.RenderModeClear, a.Mode())
	assert.Nil(t, a.Update(s, 0.016, 1.0))
	assert.Equal(t, before, s.Pix)
}

func TestStarfieldDrawsInPlace(t *testing.T) {
	sf := newStarfield(rand.New(rand.NewPCG(1, 2)))
	s := surface.New(64, 36)
	s.Clear()

	assert.Nil(t, sf.Update(s, 0.016, 16.0/9.0))

	lit := 0
	for y := 0; y < 36; y++ {
		for x := 0; x < 64; x++ {
			if s.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)
	for _, st := range sf.stars {
		assert.Greater(t, st.z, 0.0)
	}
}

func TestFireReturnsReplacementSurface(t *testing.T) {
	f := newFire(rand.New(rand.NewPCG(3, 4)))
	in := surface.New(40, 20)

	out := f.Update(in, 0.5, 2.0)
	require.NotNil(t, out)
	assert.NotSame(t, in, out)
	w, h := out.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)

	// bottom row is the hottest colour
	assert.Equal(t, firePalette[fireLevels-1], out.RGBAAt(10, 19))

	// after half a second the flames have climbed
	assert.NotEqual(t, firePalette[0], out.RGBAAt(10, 18))

	// handing it back its own surface keeps it
	assert.Same(t, out, f.Update(out, 0.016, 2.0))
}

func TestFireResizesWithSurface(t *testing.T) {
	f := newFire(rand.New(rand.NewPCG(5, 6)))
	f.Update(surface.New(10, 10), 0.1, 1)
	out := f.Update(surface.New(20, 5), 0.1, 4)
	w, h := out.Size()
	assert.Equal(t, 20, w)
	assert.Equal(t, 5, h)
}

func TestFirePaletteRamp(t *testing.T) {
	assert.Equal(t, uint8(7), firePalette[0].R)
	assert.Equal(t, uint8(255), firePalette[fireLevels-1].B)
	brightness := func(i int) int {
		c := firePalette[i]
		return int(c.R) + int(c.G) + int(c.B)
	}
	for i := 1; i < fireLevels; i++ {
		assert.GreaterOrEqual(t, brightness(i), brightness(i-1), "level %d", i)
	}
}
