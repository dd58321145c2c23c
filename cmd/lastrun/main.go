// lastrun renders the latest-run status of orchestrator jobs (schedules and
// sensors) from a job-state snapshot.
//
// Usage:
//
//	lastrun snapshot.json
//	curl -s $DAGIT/graphql -d @query.json | lastrun
//	lastrun fragment --query > query.graphql
//	lastrun watch snapshot.json
//
// Accepts a GraphQL response envelope ({"data": {"jobStatesOrError": ...}}),
// a bare list of job states, or a single job state.
//
// Output modes (auto-detected):
//
//	terminal  - styled table with hyperlinks (default when TTY)
//	llm       - terse plain text for AI consumption (default when piped)
//	json      - structured JSON for automation
//
// Exit codes: 0 clean, 1 a latest run failed, 2 usage, input or upstream error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/lastrun/internal/config"
	"github.com/dkoosis/lastrun/internal/detect"
	"github.com/dkoosis/lastrun/internal/version"
	"github.com/dkoosis/lastrun/pkg/design"
	"github.com/dkoosis/lastrun/pkg/jobstate"
	"github.com/dkoosis/lastrun/pkg/render"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Check for subcommands before flag parsing
	if len(args) > 0 {
		switch args[0] {
		case "fragment":
			return runFragment(args[1:], stdout, stderr)
		case "watch":
			return runWatch(args[1:], stdout, stderr)
		case "version":
			fmt.Fprintln(stdout, version.String())
			return 0
		}
	}

	fs := flag.NewFlagSet("lastrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cf commonFlags
	cf.register(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "lastrun: expected at most one input file, got %d\n", fs.NArg())
		return 2
	}

	env, code := setup(fs, cf, stderr)
	if code >= 0 {
		return code
	}
	defer func() { _ = env.logger.Sync() }()

	input, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "lastrun: %v\n", err)
		return 2
	}
	env.logger.Debug("input read",
		zap.String("source", inputName(fs.Arg(0))),
		zap.Int("bytes", len(input)),
		zap.Stringer("shape", detect.Sniff(input)),
	)

	states, err := jobstate.Decode(input)
	if err != nil {
		env.logger.Debug("decode failed", zap.Error(err))
		fmt.Fprint(stderr, render.Error(err, env.cfg.Theme))
		return 2
	}

	rows := render.Project(env.projector(), states)
	mode := resolveFormat(env.cfg.Format, stdout)
	env.logger.Debug("rendering", zap.String("format", mode), zap.Int("jobs", len(rows)))
	fmt.Fprint(stdout, selectRenderer(mode, env.cfg.Theme, stdout).Render(rows))
	return exitCode(rows)
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	if len(data) == 0 {
		return nil, errors.New("no input")
	}
	return data, nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

func selectRenderer(mode string, theme *design.Theme, w io.Writer) render.Renderer {
	switch mode {
	case config.FormatJSON:
		return render.NewJSON()
	case config.FormatLLM:
		return render.NewLLM()
	default:
		width, _ := termSize(w)
		return render.NewTerminal(theme, width)
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != config.FormatAuto {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm
	if isTTYWriter(w) {
		return config.FormatTerminal
	}
	return config.FormatLLM
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}

// exitCode returns 1 when any job's latest run failed, else 0.
func exitCode(rows []render.Row) int {
	if render.Failing(rows) > 0 {
		return 1
	}
	return 0
}

// projector wires the resolved theme and dashboard URL into a Projector.
func (e *env) projector() *runstatus.Projector {
	return runstatus.New(
		runstatus.WithGlyphs(e.cfg.Theme),
		runstatus.WithNavigator(runstatus.PathNavigator{BaseURL: e.cfg.BaseURL}),
	)
}
