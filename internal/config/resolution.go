package config

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/dkoosis/lastrun/pkg/design"
)

// Sources recorded in ResolvedConfig, highest priority first.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Theme   *design.Theme
	Format  string
	BaseURL string
	NoColor bool
	CI      bool
	Debug   bool

	// Resolution metadata (for debugging)
	ConfigPath    string
	ThemeSource   string
	FormatSource  string
	BaseURLSource string
	NoColorSource string
	CISource      string
	DebugSource   string
}

// ResolveConfig loads the config file and resolves every setting with
// priority CLI > env > file > default.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	appCfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return Resolve(appCfg, cliFlags)
}

// Resolve applies CLI flags and environment variables over appCfg.
func Resolve(appCfg *AppConfig, cliFlags CliFlags) (*ResolvedConfig, error) {
	if appCfg == nil {
		appCfg = Defaults()
	}
	fileSource := SourceDefault
	if appCfg.Path != "" {
		fileSource = SourceFile
	}

	resolved := &ResolvedConfig{ConfigPath: appCfg.Path}

	themeName, themeSource := resolveString(cliFlags.ThemeName, "LASTRUN_THEME", appCfg.Theme, fileSource)
	formatName, formatSource := resolveString(cliFlags.Format, "LASTRUN_FORMAT", appCfg.Format, fileSource)
	resolved.BaseURL, resolved.BaseURLSource = resolveString(cliFlags.BaseURL, "LASTRUN_BASE_URL", appCfg.BaseURL, fileSource)
	resolved.Format, resolved.FormatSource = formatName, formatSource

	resolved.NoColor, resolved.NoColorSource = resolveBool(cliFlags.NoColorSet, cliFlags.NoColor, appCfg.NoColor, fileSource, "LASTRUN_NO_COLOR", "NO_COLOR")
	resolved.CI, resolved.CISource = resolveBool(cliFlags.CISet, cliFlags.CI, appCfg.CI, fileSource, "LASTRUN_CI", "CI")
	resolved.Debug, resolved.DebugSource = resolveBool(cliFlags.DebugSet, cliFlags.Debug, appCfg.Debug, fileSource, "LASTRUN_DEBUG")

	theme, ok := appCfg.LookupTheme(themeName)
	if !ok {
		return nil, fmt.Errorf("config validation failed: unknown theme %q (%s)", themeName, themeSource)
	}
	resolved.Theme, resolved.ThemeSource = theme, themeSource

	// CI mode implies NoColor
	if resolved.CI {
		resolved.NoColor = true
	}
	if resolved.NoColor {
		resolved.Theme = design.MonochromeTheme()
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// LogFields describes where each setting came from.
func (r *ResolvedConfig) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("config_path", r.ConfigPath),
		zap.String("theme", r.Theme.Name),
		zap.String("theme_source", r.ThemeSource),
		zap.String("format", r.Format),
		zap.String("format_source", r.FormatSource),
		zap.String("base_url", r.BaseURL),
		zap.String("base_url_source", r.BaseURLSource),
		zap.Bool("no_color", r.NoColor),
		zap.String("no_color_source", r.NoColorSource),
		zap.Bool("ci", r.CI),
		zap.String("ci_source", r.CISource),
		zap.String("debug_source", r.DebugSource),
	}
}

func resolveString(cli, envKey, file, fileSource string) (string, string) {
	if cli != "" {
		return cli, SourceCLI
	}
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	return file, fileSource
}

func resolveBool(cliSet, cli, file bool, fileSource string, envKeys ...string) (bool, string) {
	if cliSet {
		return cli, SourceCLI
	}
	if v := getEnvBool(envKeys...); v != nil {
		return *v, SourceEnv
	}
	return file, fileSource
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set to a parseable value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.Theme == nil {
		return fmt.Errorf("theme cannot be nil")
	}
	switch cfg.Format {
	case FormatAuto, FormatTerminal, FormatLLM, FormatJSON:
	default:
		return fmt.Errorf("invalid format value: %s (must be: auto, terminal, llm, json)", cfg.Format)
	}
	return nil
}
