package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/lastrun/pkg/design"
)

// FileName is the config file looked up in the working directory and in the
// user config directory.
const FileName = ".lastrun.yaml"

// Output formats.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatLLM      = "llm"
	FormatJSON     = "json"
)

// Constants for default values.
const (
	DefaultThemeName = "default"
	DefaultFormat    = FormatAuto
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ThemeName string
	Format    string
	BaseURL   string
	NoColor   bool
	CI        bool
	Debug     bool

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	CISet      bool
	DebugSet   bool
}

// AppConfig represents the contents of .lastrun.yaml.
type AppConfig struct {
	Theme   string                          `yaml:"theme"`
	Format  string                          `yaml:"format"`
	BaseURL string                          `yaml:"base_url"`
	NoColor bool                            `yaml:"no_color"`
	CI      bool                            `yaml:"ci"`
	Debug   bool                            `yaml:"debug"`
	Themes  map[string]design.ThemeOverride `yaml:"themes"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Defaults returns the configuration used when no file is found.
func Defaults() *AppConfig {
	return &AppConfig{
		Theme:  DefaultThemeName,
		Format: DefaultFormat,
		Themes: map[string]design.ThemeOverride{},
	}
}

// LoadConfig reads the first .lastrun.yaml found, layered over Defaults.
// A missing file is not an error; an unreadable or malformed one is.
func LoadConfig() (*AppConfig, error) {
	cfg := Defaults()
	path := configPath()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fromFile AppConfig
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fromFile.Theme != "" {
		cfg.Theme = fromFile.Theme
	}
	if fromFile.Format != "" {
		cfg.Format = fromFile.Format
	}
	cfg.BaseURL = fromFile.BaseURL
	cfg.NoColor = fromFile.NoColor
	cfg.CI = fromFile.CI
	cfg.Debug = fromFile.Debug
	for name, o := range fromFile.Themes {
		cfg.Themes[name] = o
	}
	cfg.Path = path
	return cfg, nil
}

// configPath finds the config file: local directory first, then the user
// config directory. Returns "" when neither exists.
func configPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	userPath := filepath.Join(configHome, "lastrun", FileName)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// LookupTheme returns the named theme: a YAML-defined theme (applied over its
// base, or over the built-in of the same name) or a built-in.
func (c *AppConfig) LookupTheme(name string) (*design.Theme, bool) {
	if o, ok := c.Themes[name]; ok {
		baseName := o.Base
		if baseName == "" {
			baseName = name
		}
		base, ok := design.ThemeByName(baseName)
		if !ok {
			base = design.DefaultTheme()
		}
		return o.Apply(name, base), true
	}
	return design.ThemeByName(name)
}
