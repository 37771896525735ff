package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	// Setup
	workDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
[log]
level = "debug"
dir = "/tmp/todo-logs"

[view]
filter = "pending"
date_layout = "Jan 2"

[seed]
sample = true
file = "tasks.yaml"
`)

	// Load config
	cfg, err := NewLoaderWithGlobalDir(workDir, globalDir).Load()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/todo-logs", cfg.Log.Dir)
	assert.Equal(t, domain.FilterPending, cfg.View.Filter)
	assert.Equal(t, "Jan 2", cfg.View.DateLayout)
	assert.True(t, cfg.Seed.SampleEnabled())
	assert.Equal(t, filepath.Join(workDir, "tasks.yaml"), cfg.Seed.File)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[view]
filter = "completed"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, domain.FilterCompleted, cfg.View.Filter)
	assert.Equal(t, domain.DefaultDateLayout, cfg.View.DateLayout)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "warn"

[view]
filter = "completed"
date_layout = "02/01/2006"
`)
	writeFile(t, domain.LocalConfigPath(workDir), `
[view]
filter = "pending"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, domain.FilterPending, cfg.View.Filter)
	assert.Equal(t, "02/01/2006", cfg.View.DateLayout)
}

func TestLoader_Load_LocalSampleFalseOverridesGlobal(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[seed]\nsample = true\n")
	writeFile(t, domain.LocalConfigPath(workDir), "[seed]\nsample = false\n")
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Seed.Sample)
	assert.False(t, cfg.Seed.SampleEnabled())

	// Without the local file the global value stands.
	cfg, err = loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreLocal: true})
	require.NoError(t, err)
	assert.True(t, cfg.Seed.SampleEnabled())
}

func TestLoader_Load_SeedFileRelativeToConfig(t *testing.T) {
	tests := []struct {
		name   string
		global bool
		file   string
		want   func(workDir, globalDir string) string
	}{
		{
			name: "local relative",
			file: "tasks.yaml",
			want: func(workDir, _ string) string { return filepath.Join(workDir, "tasks.yaml") },
		},
		{
			name:   "global relative",
			global: true,
			file:   "seeds/tasks.yaml",
			want:   func(_, globalDir string) string { return filepath.Join(globalDir, "seeds", "tasks.yaml") },
		},
		{
			name: "absolute kept",
			file: filepath.Join(os.TempDir(), "abs.yaml"),
			want: func(_, _ string) string { return filepath.Join(os.TempDir(), "abs.yaml") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := t.TempDir()
			globalDir := t.TempDir()
			path := domain.LocalConfigPath(workDir)
			if tt.global {
				path = filepath.Join(globalDir, domain.ConfigFileName)
			}
			writeFile(t, path, "[seed]\nfile = '"+tt.file+"'\n")

			cfg, err := NewLoaderWithGlobalDir(workDir, globalDir).Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want(workDir, globalDir), cfg.Seed.File)
		})
	}
}

func TestLoader_Load_InvalidTypeWarnings(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
[log]
level = 3

[view]
filter = true

[seed]
sample = "yes"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()
	require.NoError(t, err)

	require.Len(t, cfg.Warnings, 3)
	assert.Contains(t, cfg.Warnings[0], "invalid type for [log] level: int64")
	assert.Contains(t, cfg.Warnings[1], "invalid type for [seed] sample: string")
	assert.Contains(t, cfg.Warnings[2], "invalid type for [view] filter: bool")
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.FilterAll, cfg.View.Filter)
	assert.Nil(t, cfg.Seed.Sample)
}

func TestLoader_LoadWithOptions_IgnoreSources(t *testing.T) {
	workDir := t.TempDir()
	globalDir := t.TempDir()
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), "[log]\nlevel = \"error\"\n")
	writeFile(t, domain.LocalConfigPath(workDir), "[log]\nlevel = \"debug\"\n")
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreLocal: true})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)

	cfg, err = loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreGlobal: true})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	cfg, err = loader.LoadWithOptions(domain.LoadConfigOptions{IgnoreGlobal: true, IgnoreLocal: true})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestLoader_Load_Warnings(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), `
[log]
colour = "red"

[view]
filter = "someday"

[storage]
path = "x"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()
	require.NoError(t, err)

	require.Len(t, cfg.Warnings, 3)
	assert.Contains(t, cfg.Warnings[0], "invalid [view] filter")
	assert.Contains(t, cfg.Warnings[1], "unknown key in [log]: colour")
	assert.Contains(t, cfg.Warnings[2], "unknown section: storage")
	assert.Equal(t, domain.FilterAll, cfg.View.Filter)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, domain.LocalConfigPath(workDir), "[log\nlevel=")

	_, err := NewLoaderWithGlobalDir(workDir, t.TempDir()).Load()

	assert.Error(t, err)
}

func TestLoader_EmptyGlobalDir(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")

	assert.Empty(t, loader.GlobalPath())
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
