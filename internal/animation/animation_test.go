package animation

import (
	"testing"

	"github.com/matjam/shaderpaper/internal/gpu"
	"github.com/matjam/shaderpaper/internal/surface"
	"github.com/matjam/shaderpaper/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct{}

func (stub) FragmentShader() string { return "void main() {}" }
func (stub) Mode() types.RenderMode { return types.RenderModeClear }

func (stub) Update(*surface.Surface, float64, float64) *surface.Surface { return nil }

func (stub) SetUniforms(gpu.Program, float64, float64) {}

func newStub() Animation { return stub{} }

func TestNormalize(t *testing.T) {
	assert.Equal(t, "shaders.circular", Normalize("shaders.circular"))
	assert.Equal(t, "shaders.circular", Normalize("data.shaders.circular"))
	assert.Equal(t, "shaders.circular", Normalize("  shaders.circular\r\n"))
	assert.Equal(t, "", Normalize("   "))
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register("shaders.one", newStub)

	f, err := r.Lookup("data.shaders.one")
	require.NoError(t, err)
	assert.NotNil(t, f())

	_, err = r.Lookup("shaders.two")
	assert.ErrorIs(t, err, ErrUnknownAnimation)
	assert.True(t, r.Has("shaders.one"))
	assert.False(t, r.Has("shaders.two"))
}

func TestRegistryRejectsBadRegistrations(t *testing.T) {
	r := NewRegistry()
	r.Register("a", newStub)

	assert.Panics(t, func() { r.Register("a", newStub) })
	assert.Panics(t, func() { r.Register("data.a", newStub) })
	assert.Panics(t, func() { r.Register("", newStub) })
	assert.Panics(t, func() { r.Register("b", nil) })
}

func TestRegistryNamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("shaders.plasma", newStub)
	r.Register("pixels.fire", newStub)
	r.Register("shaders.circular", newStub)

	assert.Equal(t, []string{"pixels.fire", "shaders.circular", "shaders.plasma"}, r.Names())
}

type uniformRecorder struct {
	floats map[string]float32
}

func (u *uniformRecorder) Use()                            {}
func (u *uniformRecorder) SetInt(string, int32)            {}
func (u *uniformRecorder) SetFloat(name string, v float32) { u.floats[name] = v }
func (u *uniformRecorder) Draw()                           {}
func (u *uniformRecorder) Release()                        {}

func TestSetCommonUniforms(t *testing.T) {
	p := &uniformRecorder{floats: map[string]float32{}}
	SetCommonUniforms(p, 1.5, 16.0/9.0)
	assert.Equal(t, float32(1.5), p.floats["time"])
	assert.InDelta(t, 16.0/9.0, p.floats["aspect_ratio"], 1e-6)
}
