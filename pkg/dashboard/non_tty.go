package dashboard

import (
	"context"
	"fmt"
	"io"

	"github.com/dkoosis/lastrun/pkg/render"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

// RunNonTTY is the watch loop for non-interactive output: it renders the
// snapshot once, then again on every change until ctx is cancelled or the
// watcher closes. Load failures are reported and the loop keeps going.
// Returns 1 when the last good snapshot has a failing latest run.
func RunNonTTY(ctx context.Context, opts Options, renderer render.Renderer, out io.Writer) int {
	p := opts.Projector
	if p == nil {
		p = runstatus.New()
	}
	var last []render.Row

	emit := func() {
		if opts.Load == nil {
			fmt.Fprintln(out, "error: no snapshot source")
			return
		}
		states, err := opts.Load()
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		last = render.Project(p, states)
		fmt.Fprint(out, renderer.Render(last))
	}

	emit()
	if opts.Watcher != nil {
	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case _, ok := <-opts.Watcher.Changes():
				if !ok {
					break loop
				}
				emit()
			case err, ok := <-opts.Watcher.Errors():
				if !ok {
					break loop
				}
				fmt.Fprintf(out, "error: watching: %v\n", err)
			}
		}
	}

	if render.Failing(last) > 0 {
		return 1
	}
	return 0
}
