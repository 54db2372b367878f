package ipc

import (
	"fmt"

	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/matjam/shaderpaper/internal/control"
	"github.com/matjam/shaderpaper/internal/engine"
)

type RunningEngine interface {
	Status() engine.Status
	Stop()
}

// EngineController validates switch requests against the registry and
// hands them to the control store; the render loop picks them up on its
// next poll.
type EngineController struct {
	Engine   RunningEngine
	Registry *animation.Registry
	Control  *control.File
}

func (c *EngineController) Status() engine.Status { return c.Engine.Status() }

func (c *EngineController) Stop() { c.Engine.Stop() }

func (c *EngineController) ControlPath() string { return c.Control.Path() }

func (c *EngineController) RequestSwitch(name string) error {
	name = animation.Normalize(name)
	if !c.Registry.Has(name) {
		return fmt.Errorf("%w: %q", animation.ErrUnknownAnimation, name)
	}
	return c.Control.Request(name)
}
