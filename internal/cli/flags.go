package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shaderpaper/shaderpaper.toml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging and the FPS overlay")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	rootCmd.PersistentFlags().BoolP("help", "h", false, "Print usage")

	rootCmd.Flags().StringP("animation", "a", "", "Animation to start with, e.g. shaders.plasma")
	rootCmd.Flags().BoolP("clear", "c", false, "Detach from the desktop, restore the wallpaper and exit")
	rootCmd.Flags().BoolP("installconfig", "i", false, "Install a default config file")
	rootCmd.Flags().Bool("show-config", false, "Dump resolved config")
	rootCmd.Flags().BoolP("background", "b", false, "Run as a daemon")
	rootCmd.Flags().BoolP("version", "v", false, "Print version")
}
