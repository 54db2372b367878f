package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/matjam/shaderpaper/internal/animation"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available animations",
		Run: func(cmd *cobra.Command, args []string) {
			current := animation.Normalize(viper.GetString("animation"))
			green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))

			for _, name := range animation.Default.Names() {
				if name == current {
					fmt.Fprintln(cmd.OutOrStdout(), green.Render(name+" (default)"))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
