package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/matjam/shaderpaper/internal/control"
	"github.com/matjam/shaderpaper/internal/ipc"
	"github.com/spf13/cobra"
)

// Switch asks the running engine for a new animation. When no engine
// answers, the control file is written directly; it is read on the next
// start.
func Switch(client *ipc.Client, registry *animation.Registry, ctl *control.File, name string) error {
	name = animation.Normalize(name)
	if !registry.Has(name) {
		return fmt.Errorf("%w: %q", animation.ErrUnknownAnimation, name)
	}

	_, err := client.Switch(name)
	if err == nil {
		return nil
	}
	log.Debugf("control server unavailable: %v", err)

	log.Infof("shaderpaper is not running, writing %s", ctl.Path())
	return ctl.Request(name)
}

func NewSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch <animation>",
		Short: "Switch the running engine to another animation",
		Long: `Requests a different animation. The engine picks it up at its next poll,
within poll_interval seconds. Run "shaderpaper list" for the available names.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			err := Switch(ipc.NewClient(ipc.SocketPath()), animation.Default, ControlFile(), args[0])
			if err != nil {
				log.Fatalf("Failed to switch: %v", err)
			}
			log.Infof("Requested %s", animation.Normalize(args[0]))
		},
	}
}
