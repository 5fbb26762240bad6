package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hoppxi/lume/pkg/backlight"
)

// File mirrors the lume.yaml layout.
type File struct {
	Device string `yaml:"device"`
	Fade   struct {
		Enabled bool   `yaml:"enabled"`
		Delay   string `yaml:"delay"`
	} `yaml:"fade"`
	Floor  uint `yaml:"floor"`
	Notify bool `yaml:"notify"`
}

// Default returns the config lume runs with when no file is present.
func Default() File {
	var f File
	f.Fade.Enabled = true
	f.Fade.Delay = backlight.DefaultStepDelay.String()
	return f
}

// WriteDefault creates the config file with default values. It refuses to
// overwrite an existing file.
func WriteDefault() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, os.ErrExist
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", err
	}

	return path, os.WriteFile(path, data, 0644)
}
