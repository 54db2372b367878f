package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/matjam/shaderpaper/internal/cli/cmd/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func SetDefaults() {
	viper.SetDefault("animation", "shaders.circular")
	viper.SetDefault("control_file", "anim/anim.txt")
	viper.SetDefault("poll_interval", 2.0)
	viper.SetDefault("framerate_limit", 60)
	viper.SetDefault("base_width", 360)
	viper.SetDefault("base_height", 360)
	viper.SetDefault("debug", false)
	viper.SetDefault("log_file", false)
	viper.SetDefault("log_dir", utils.DataDir())
}

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("shaderpaper")
		viper.SetConfigType("toml")
		viper.AddConfigPath(utils.ConfigDir())
		viper.AddConfigPath("$HOME/.config/shaderpaper")
		viper.AddConfigPath("/etc/xdg/shaderpaper")
	}

	SetDefaults()

	viper.SetEnvPrefix("SHADERPAPER")
	viper.AutomaticEnv() // read environment variables that match

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		log.Debug("no config file found, using defaults")
	} else {
		cobra.CheckErr(err)
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}
