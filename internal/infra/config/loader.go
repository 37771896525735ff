// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the local .todo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalPath returns the global config file path, or "" when unknown.
func (l *Loader) GlobalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// LocalPath returns the local config file path, or "" when unknown.
func (l *Loader) LocalPath() string {
	if l.workDir == "" {
		return ""
	}
	return domain.LocalConfigPath(l.workDir)
}

// Load returns the merged configuration (defaults <- global <- local).
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, local *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.loadOptional(l.GlobalPath())
		if err != nil {
			return nil, err
		}
	}

	if !opts.IgnoreLocal {
		local, err = l.loadOptional(l.LocalPath())
		if err != nil {
			return nil, err
		}
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// loadOptional loads path, treating a missing file (or empty path) as absent.
func (l *Loader) loadOptional(path string) (*domain.Config, error) {
	if path == "" {
		return nil, nil
	}
	cfg, err := loadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile loads a configuration from a file.
func loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg := convertRawToDomainConfig(raw)
	// Seed files are relative to the config file that names them.
	if cfg.Seed.File != "" && !filepath.IsAbs(cfg.Seed.File) {
		cfg.Seed.File = filepath.Join(filepath.Dir(path), cfg.Seed.File)
	}
	for i, w := range cfg.Warnings {
		cfg.Warnings[i] = fmt.Sprintf("%s: %s", path, w)
	}
	return cfg, nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string
	warnType := func(section, key string, v any) {
		warnings = append(warnings, fmt.Sprintf("invalid type for [%s] %s: %T", section, key, v))
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					} else {
						warnType(section, k, v)
					}
				case "dir":
					if s, ok := v.(string); ok {
						res.Log.Dir = s
					} else {
						warnType(section, k, v)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "view":
			for k, v := range m {
				switch k {
				case "filter":
					s, ok := v.(string)
					if !ok {
						warnType(section, k, v)
						continue
					}
					f, err := domain.ParseFilter(s)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid [view] filter: %q", s))
						continue
					}
					res.View.Filter = f
				case "date_layout":
					if s, ok := v.(string); ok {
						res.View.DateLayout = s
					} else {
						warnType(section, k, v)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [view]: %s", k))
				}
			}
		case "seed":
			for k, v := range m {
				switch k {
				case "sample":
					if b, ok := v.(bool); ok {
						res.Seed.Sample = &b
					} else {
						warnType(section, k, v)
					}
				case "file":
					if s, ok := v.(string); ok {
						res.Seed.File = s
					} else {
						warnType(section, k, v)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [seed]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Log:      base.Log,
		View:     base.View,
		Seed:     base.Seed,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Dir != "" {
		result.Log.Dir = override.Log.Dir
	}
	if override.View.Filter != "" {
		result.View.Filter = override.View.Filter
	}
	if override.View.DateLayout != "" {
		result.View.DateLayout = override.View.DateLayout
	}
	if override.Seed.Sample != nil {
		sample := *override.Seed.Sample
		result.Seed.Sample = &sample
	}
	if override.Seed.File != "" {
		result.Seed.File = override.Seed.File
	}

	return result
}
