package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/hoppxi/lume/pkg/backlight"
)

var (
	once sync.Once
	v    *viper.Viper
)

// Load reads the lume config, falling back to defaults when no file
// exists. The config is read once per process.
func Load() *viper.Viper {
	once.Do(func() {
		v = viper.New()

		v.SetDefault("device", "")
		v.SetDefault("fade.enabled", true)
		v.SetDefault("fade.delay", backlight.DefaultStepDelay)
		v.SetDefault("floor", 0)
		v.SetDefault("notify", false)

		path, err := Path()
		if err != nil {
			return
		}

		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		// a missing config file just means defaults
		_ = v.ReadInConfig()
	})

	return v
}

// Path returns where the config file lives, whether or not it exists.
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "lume", "lume.yaml"), nil
}

// Watch invokes onChange whenever the config file is modified. Load must
// have been called first.
func Watch(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		onChange()
	})
}
