/*
Copyright © 2025 Nathan Ollerenshaw <chrome@stupendous.net>
*/
package cli

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper"
	"github.com/matjam/shaderpaper/internal/cli/cmd"
	"github.com/matjam/shaderpaper/internal/cli/cmd/utils"
	"github.com/matjam/shaderpaper/internal/desktop"
	"github.com/matjam/shaderpaper/internal/ipc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shaderpaper",
	Short: "A hardware accelerated live wallpaper",
	Long: `Shaderpaper draws animated shaders and pixel animations behind your
desktop icons using OpenGL, pausing whenever a fullscreen application
is in front.`,
	Run: func(c *cobra.Command, args []string) {
		if v, err := c.Flags().GetBool("show-config"); err == nil && v {
			allSettings := viper.AllSettings()

			log.Infof("Using config file: %v", viper.ConfigFileUsed())
			log.Infof("All settings:")
			utils.PrintJSONColored(allSettings)
			return
		}

		babyBlue := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
		yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
		green := lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
		if v, err := c.Flags().GetBool("version"); err == nil && v {
			log.Infof("%v version %v © 2025 %v",
				babyBlue.Render("shaderpaper "),
				green.Render(strings.Trim(shaderpaper.Version, "\n\r ")),
				yellow.Render("Nathan Ollerenshaw"))
			return
		}

		if v, err := c.Flags().GetBool("installconfig"); err == nil && v {
			path, err := utils.InstallDefaultConfig()
			if err != nil {
				log.Fatalf("%v", err)
			}
			log.Infof("Installed default config file at %v", path)
			return
		}

		if v, err := c.Flags().GetBool("clear"); err == nil && v {
			clearDesktop()
			return
		}

		if v, err := c.Flags().GetBool("background"); err == nil && v && !cmd.InBackground() {
			parent, release, err := cmd.Daemonize()
			if err != nil {
				log.Fatalf("Failed to start in the background: %v", err)
			}
			if parent {
				return
			}
			defer release()
		}

		if cmd.InBackground() || viper.GetBool("log_file") {
			cmd.SetupRotatingLogger()
		}

		override, _ := c.Flags().GetString("animation")
		if err := cmd.StartEngine(override); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	},
}

// clearDesktop stops a running engine and puts the static wallpaper back.
func clearDesktop() {
	if _, err := ipc.NewClient(ipc.SocketPath()).Stop(); err == nil {
		log.Info("Stopped the running engine")
		return
	}

	provider, err := desktop.New()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer provider.Close()

	if err := provider.DetachAndRestore(); err != nil {
		log.Fatalf("Failed to restore the desktop: %v", err)
	}
	log.Info("Desktop restored")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	RegisterFlags(rootCmd)

	rootCmd.AddCommand(
		cmd.NewSwitchCmd(),
		cmd.NewListCmd(),
		cmd.NewStatusCmd(),
		cmd.NewStopCmd(),
		cmd.NewGenManCmd(rootCmd),
	)
}
