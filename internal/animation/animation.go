// Package animation defines the plugin interface for wallpaper animations and
// the registry that maps descriptors such as "shaders.circular" to them.
package animation

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/matjam/shaderpaper/internal/gpu"
	"github.com/matjam/shaderpaper/internal/surface"
	"github.com/matjam/shaderpaper/internal/types"
)

var ErrUnknownAnimation = errors.New("unknown animation")

// Animation is a single running instance of a wallpaper animation. The
// fragment shader source and render mode must not change over the life of
// an instance.
type Animation interface {
	FragmentShader() string
	Mode() types.RenderMode

	// Update advances the animation by dt seconds and may draw into s. If it
	// returns a non-nil surface, that surface replaces s as the frame surface
	// from now on.
	Update(s *surface.Surface, dt, aspectRatio float64) *surface.Surface

	// SetUniforms is called with the program already in use, after the
	// frame texture has been bound to the "tex" sampler.
	SetUniforms(p gpu.Program, time, aspectRatio float64)
}

type Factory func() Animation

// Registry maps descriptors to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default is the registry the built-in animations register themselves with.
var Default = NewRegistry()

// Register adds a factory under name. It panics if name is empty, the
// factory is nil, or the name is already taken.
func (r *Registry) Register(name string, factory Factory) {
	name = Normalize(name)
	if name == "" {
		panic("animation: Register with empty name")
	}
	if factory == nil {
		panic("animation: Register factory is nil for " + name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[name]; dup {
		panic("animation: Register called twice for " + name)
	}
	r.factories[name] = factory
}

func (r *Registry) Lookup(name string) (Factory, error) {
	name = Normalize(name)

	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnimation, name)
	}
	return f, nil
}

func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Names returns the registered descriptors in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Register adds a factory to the Default registry.
func Register(name string, factory Factory) {
	Default.Register(name, factory)
}

// Normalize trims whitespace and the legacy "data." package prefix, so
// "data.shaders.circular" and "shaders.circular" name the same animation.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	return strings.TrimPrefix(name, "data.")
}

// SetCommonUniforms sets the time and aspect_ratio uniforms every built-in
// shader declares.
func SetCommonUniforms(p gpu.Program, time, aspectRatio float64) {
	p.SetFloat("time", float32(time))
	p.SetFloat("aspect_ratio", float32(aspectRatio))
}
