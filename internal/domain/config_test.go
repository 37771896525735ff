package domain

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Log.Dir)
	assert.Equal(t, FilterAll, cfg.View.Filter)
	assert.Equal(t, DefaultDateLayout, cfg.View.DateLayout)
	assert.Nil(t, cfg.Seed.Sample)
	assert.False(t, cfg.Seed.SampleEnabled())
	assert.Empty(t, cfg.Seed.File)
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.View.Filter = FilterPending

	out := RenderConfigTemplate(cfg)

	assert.Contains(t, out, `filter = "pending"`)
	assert.Contains(t, out, `level = "info"`)

	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &raw))
	assert.Contains(t, raw, "log")
	assert.Contains(t, raw, "view")
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u/.config", "todo", "config.toml"), GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, filepath.Join("/work", ".todo.toml"), LocalConfigPath("/work"))
	assert.Equal(t, filepath.Join("/var/log", "todo.log"), LogPath("/var/log"))
}
