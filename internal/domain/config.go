package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string   `toml:"-"`
	Log      LogConfig  `toml:"log"`
	View     ViewConfig `toml:"view"`
	Seed     SeedConfig `toml:"seed"`
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Log directory (empty = logging disabled)
}

// ViewConfig holds display settings from [view] section.
type ViewConfig struct {
	Filter     Filter `toml:"filter,omitempty"`      // Initial filter
	DateLayout string `toml:"date_layout,omitempty"` // Go time layout for dates a week old or more
}

// SeedConfig holds startup data settings from [seed] section.
type SeedConfig struct {
	Sample *bool  `toml:"sample,omitempty"` // Preload the built-in sample tasks (nil = unset)
	File   string `toml:"file,omitempty"`   // YAML file with initial tasks
}

// SampleEnabled reports whether the sample tasks are preloaded.
func (s SeedConfig) SampleEnabled() bool {
	return s.Sample != nil && *s.Sample
}

// LoadConfigOptions controls which config sources are read.
type LoadConfigOptions struct {
	IgnoreGlobal bool // Skip the global config file
	IgnoreLocal  bool // Skip the local config file
}

// Default configuration values.
const (
	DefaultLogLevel = "info"
)

// Directory and file names.
const (
	AppDirName          = "todo"        // Directory name under the config home
	ConfigFileName      = "config.toml" // Global config file name
	LocalConfigFileName = ".todo.toml"  // Config file name in the working directory
	LogFileName         = "todo.log"    // Log file name inside the log directory
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the config path inside dir.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// LogPath returns the log file path inside logDir.
func LogPath(logDir string) string {
	return filepath.Join(logDir, LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		View: ViewConfig{
			Filter:     FilterAll,
			DateLayout: DefaultDateLayout,
		},
	}
}

// RenderConfigTemplate renders the commented config template with the
// values of cfg filled in as defaults.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
