package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/cli/cmd/utils"
	"github.com/matjam/shaderpaper/internal/ipc"
	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get shaderpaper status",
		Long:  `Returns the active animation, pause state and frame rate of the running shaderpaper process.`,
		Run: func(cmd *cobra.Command, args []string) {
			response, err := ipc.NewClient(ipc.SocketPath()).Status()
			if err != nil {
				log.Errorf("shaderpaper is not running: %v", err)
				return
			}

			utils.PrintJSONColored(response)
		},
	}
}
