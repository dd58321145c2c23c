package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/dkoosis/lastrun/internal/config"
	"github.com/dkoosis/lastrun/pkg/dashboard"
)

// runWatch shows the snapshot file and refreshes whenever it changes: the
// interactive dashboard on a TTY, re-rendered output otherwise.
func runWatch(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lastrun watch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cf commonFlags
	cf.register(fs)
	once := fs.Bool("once", false, "Render once and exit instead of watching")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || fs.Arg(0) == "-" {
		fmt.Fprintf(stderr, "lastrun watch: expected one snapshot file\n")
		return 2
	}
	path := fs.Arg(0)

	env, code := setup(fs, cf, stderr)
	if code >= 0 {
		return code
	}
	defer func() { _ = env.logger.Sync() }()

	opts := dashboard.Options{
		Load:      dashboard.FileLoader(path),
		Projector: env.projector(),
		Theme:     env.cfg.Theme,
	}
	if !*once {
		w, err := dashboard.Watch(path)
		if err != nil {
			fmt.Fprintf(stderr, "lastrun watch: %v\n", err)
			return 2
		}
		defer func() { _ = w.Close() }()
		opts.Watcher = w
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mode := resolveFormat(env.cfg.Format, stdout)
	env.logger.Debug("watching", zap.String("path", path), zap.String("format", mode), zap.Bool("once", *once))

	if mode == config.FormatTerminal && isTTYWriter(stdout) && !*once {
		code, err := dashboard.Run(ctx, opts)
		if err != nil {
			fmt.Fprintf(stderr, "lastrun watch: %v\n", err)
			return 2
		}
		env.logger.Debug("dashboard closed", zap.Int("exit_code", code))
		return code
	}
	return dashboard.RunNonTTY(ctx, opts, selectRenderer(mode, env.cfg.Theme, stdout), stdout)
}
