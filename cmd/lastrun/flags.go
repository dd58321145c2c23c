package main

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dkoosis/lastrun/internal/config"
)

// commonFlags are accepted by the render and watch commands.
type commonFlags struct {
	format  string
	theme   string
	baseURL string
	noColor bool
	ci      bool
	debug   bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "", "Output format: auto, terminal, llm, json")
	fs.StringVar(&c.theme, "theme", "", "Theme: default, orca, mono, or one defined in .lastrun.yaml")
	fs.StringVar(&c.baseURL, "base-url", "", "Dashboard base URL used for run links")
	fs.BoolVar(&c.noColor, "no-color", false, "Disable colors and hyperlinks")
	fs.BoolVar(&c.ci, "ci", false, "CI mode (implies --no-color)")
	fs.BoolVar(&c.debug, "debug", false, "Log diagnostics to stderr")
}

// cliFlags converts parsed flags to config.CliFlags, marking booleans the
// user set explicitly.
func (c *commonFlags) cliFlags(fs *flag.FlagSet) config.CliFlags {
	out := config.CliFlags{
		ThemeName: c.theme,
		Format:    c.format,
		BaseURL:   c.baseURL,
		NoColor:   c.noColor,
		CI:        c.ci,
		Debug:     c.debug,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-color":
			out.NoColorSet = true
		case "ci":
			out.CISet = true
		case "debug":
			out.DebugSet = true
		}
	})
	return out
}

// env is the resolved configuration plus the logger built from it.
type env struct {
	cfg    *config.ResolvedConfig
	logger *zap.Logger
}

// setup resolves configuration and builds the logger.
// Returns (env, -1) on success; (nil, exitCode) on error.
func setup(fs *flag.FlagSet, cf commonFlags, stderr io.Writer) (*env, int) {
	cfg, err := config.ResolveConfig(cf.cliFlags(fs))
	if err != nil {
		fmt.Fprintf(stderr, "lastrun: %v\n", err)
		return nil, 2
	}
	logger := newLogger(cfg.Debug, stderr)
	logger.Debug("config resolved", cfg.LogFields()...)
	return &env{cfg: cfg, logger: logger}, -1
}

// newLogger returns a development console logger on w when debug is set,
// and a no-op logger otherwise.
func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core, zap.Development())
}
