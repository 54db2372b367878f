package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running shaderpaper process",
		Long: `Asks the running shaderpaper process to leave its render loop. It detaches
from the desktop and puts the static wallpaper back before exiting.`,
		Run: func(cmd *cobra.Command, args []string) {
			socket := ipc.SocketPath()
			if _, err := ipc.NewClient(socket).Stop(); err != nil {
				log.Fatalf("shaderpaper is not running on %s: %v", socket, err)
			}
			log.Info("Stop requested, the desktop wallpaper will be restored")
		},
	}
}
