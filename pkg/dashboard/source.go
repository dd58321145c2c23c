package dashboard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/dkoosis/lastrun/pkg/jobstate"
)

// Loader produces the current job snapshot.
type Loader func() ([]jobstate.JobState, error)

// FileLoader reads and decodes the snapshot at path on every call.
func FileLoader(path string) Loader {
	return func() ([]jobstate.JobState, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		states, err := jobstate.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return states, nil
	}
}

// Watcher reports changes to a single file. The parent directory is watched
// so that editors replacing the file by rename are still seen.
type Watcher struct {
	fw      *fsnotify.Watcher
	path    string
	changes chan struct{}
	errs    chan error
}

// Watch starts watching path.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		fw:      fw,
		path:    abs,
		changes: make(chan struct{}, 1),
		errs:    make(chan error, 1),
	}
	go w.loop()
	return w, nil
}

// Changes delivers one value per burst of writes; pending changes coalesce.
// Closed after Close.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Errors delivers watcher errors. Errors are dropped while one is pending.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher.
func (w *Watcher) Close() error { return w.fw.Close() }

func (w *Watcher) loop() {
	defer close(w.changes)
	defer close(w.errs)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				select {
				case w.changes <- struct{}{}:
				default:
				}
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}
