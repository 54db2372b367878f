package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfig(t *testing.T, contents string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shaderpaper.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	viper.Reset()
	cfgFile = path
	t.Cleanup(func() {
		cfgFile = ""
		viper.Reset()
	})
}

func TestInitConfigDefaults(t *testing.T) {
	withConfig(t, "")
	InitConfig()

	assert.Equal(t, "shaders.circular", viper.GetString("animation"))
	assert.Equal(t, "anim/anim.txt", viper.GetString("control_file"))
	assert.Equal(t, 2.0, viper.GetFloat64("poll_interval"))
	assert.Equal(t, 60, viper.GetInt("framerate_limit"))
	assert.Equal(t, 360, viper.GetInt("base_width"))
	assert.Equal(t, 360, viper.GetInt("base_height"))
	assert.False(t, viper.GetBool("debug"))
	assert.False(t, viper.GetBool("log_file"))
}

func TestInitConfigFileAndEnv(t *testing.T) {
	withConfig(t, `
animation = "pixels.fire"
poll_interval = 0.5
base_height = 200
`)
	t.Setenv("SHADERPAPER_FRAMERATE_LIMIT", "30")
	InitConfig()

	assert.Equal(t, "pixels.fire", viper.GetString("animation"))
	assert.Equal(t, 0.5, viper.GetFloat64("poll_interval"))
	assert.Equal(t, 200, viper.GetInt("base_height"))
	assert.Equal(t, 30, viper.GetInt("framerate_limit"))
}

func TestBundledConfigParses(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "shaderpaper.toml"))
	require.NoError(t, err)
	withConfig(t, string(data))
	InitConfig()

	assert.Equal(t, "shaders.circular", viper.GetString("animation"))
	assert.Equal(t, 60, viper.GetInt("framerate_limit"))
}
