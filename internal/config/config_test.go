package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hoppxi/lume/pkg/backlight"
)

func TestWriteDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := WriteDefault()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var f File
	require.NoError(t, yaml.Unmarshal(data, &f))
	assert.Equal(t, Default(), f)

	// a second run keeps the existing file
	_, err = WriteDefault()
	require.ErrorIs(t, err, os.ErrExist)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()
	assert.Equal(t, "", cfg.GetString("device"))
	assert.True(t, cfg.GetBool("fade.enabled"))
	assert.Equal(t, backlight.DefaultStepDelay, cfg.GetDuration("fade.delay"))
	assert.Equal(t, uint(0), cfg.GetUint("floor"))
	assert.False(t, cfg.GetBool("notify"))
}
