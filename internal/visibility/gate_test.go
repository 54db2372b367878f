package visibility

import (
	"testing"

	"github.com/matjam/shaderpaper/internal/types"
	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	fullscreen bool
	shows      int
	hides      int
}

func (p *fakeProvider) IsForegroundWindowFullscreen() bool { return p.fullscreen }
func (p *fakeProvider) ShowSurface()                       { p.shows++ }
func (p *fakeProvider) HideSurface()                       { p.hides++ }

func TestGateStartsVisible(t *testing.T) {
	p := &fakeProvider{}
	g := NewGate(p)
	assert.Equal(t, types.VisibilityVisible, g.state)

	assert.False(t, g.ShouldPause())
	assert.Equal(t, 0, p.shows)
	assert.Equal(t, 0, p.hides)
}

func TestGateHidesOnceWhileFullscreen(t *testing.T) {
	p := &fakeProvider{fullscreen: true}
	g := NewGate(p)

	assert.True(t, g.ShouldPause())
	assert.Equal(t, 1, p.hides)
	assert.Equal(t, types.VisibilityPaused, g.state)

	assert.True(t, g.ShouldPause())
	assert.True(t, g.ShouldPause())
	assert.Equal(t, 1, p.hides)
	assert.Equal(t, 0, p.shows)
}

func TestGateResumes(t *testing.T) {
	p := &fakeProvider{fullscreen: true}
	g := NewGate(p)
	g.ShouldPause()

	p.fullscreen = false
	assert.False(t, g.ShouldPause())
	assert.Equal(t, 1, p.shows)
	assert.Equal(t, types.VisibilityVisible, g.state)

	p.fullscreen = true
	assert.True(t, g.ShouldPause())
	assert.Equal(t, 2, p.hides)
}
