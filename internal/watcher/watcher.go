package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"commondlg/internal/dialog"
)

// Watcher guards the dialog manager's remembered folders. Remembered
// folders can be deleted or renamed between dialogs, which would turn
// the next dialog invocation into a configuration failure; when that
// happens the watcher resets the affected default(s) to the fallback
// folder. The dialog core never depends on it.
type Watcher struct {
	config Config
	fs     *fsnotify.Watcher
	log    *logrus.Logger

	watched map[string]bool
}

// Config holds watcher configuration.
type Config struct {
	// Fallback is the folder defaults are reset to. It should exist
	// for the process lifetime (the user's home directory is a good
	// choice).
	Fallback string
	// PollInterval is how often the watch set is re-synced with the
	// manager's current defaults, which move after every confirmed
	// dialog.
	PollInterval time.Duration
	// Log receives diagnostics; logrus.StandardLogger when nil.
	Log *logrus.Logger
}

// New creates a defaults watcher.
func New(config Config) (*Watcher, error) {
	if config.PollInterval == 0 {
		config.PollInterval = time.Second
	}
	if config.Log == nil {
		config.Log = logrus.StandardLogger()
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Watcher{config: config, fs: fs, watched: make(map[string]bool)}, nil
}

// Run watches until the context is cancelled. It briefly leases the
// manager on each sync and when resetting a default, so it serializes
// with dialog sessions like any other caller.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	w.sync()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.sync()
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.config.Log.WithError(err).Warn("defaults watch error")
		}
	}
}

// sync points the fsnotify watch set at the manager's current
// remembered folders.
func (w *Watcher) sync() {
	lease, ok := dialog.TryGet()
	if !ok {
		return
	}
	current := map[string]bool{
		lease.DefaultOpen(): true,
		lease.DefaultSave(): true,
	}
	lease.Release()

	for dir := range w.watched {
		if current[dir] {
			continue
		}
		w.fs.Remove(dir)
		delete(w.watched, dir)
	}
	for dir := range current {
		if dir == "" || w.watched[dir] {
			continue
		}
		if err := w.fs.Add(dir); err != nil {
			// The folder may already be gone; treat it like a
			// removal event.
			w.resetDefaults(dir)
			continue
		}
		w.watched[dir] = true
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !w.watched[ev.Name] {
		return
	}
	w.fs.Remove(ev.Name)
	delete(w.watched, ev.Name)
	w.resetDefaults(ev.Name)
}

// resetDefaults replaces every remembered default still pointing at
// the vanished folder with the fallback.
func (w *Watcher) resetDefaults(dir string) {
	lease, ok := dialog.TryGet()
	if !ok {
		return
	}
	defer lease.Release()

	if lease.DefaultOpen() == dir {
		lease.SetDefaultOpen(w.config.Fallback)
		w.config.Log.WithFields(logrus.Fields{
			"folder":   dir,
			"fallback": w.config.Fallback,
		}).Info("remembered open folder vanished, reset to fallback")
	}
	if lease.DefaultSave() == dir {
		lease.SetDefaultSave(w.config.Fallback)
		w.config.Log.WithFields(logrus.Fields{
			"folder":   dir,
			"fallback": w.config.Fallback,
		}).Info("remembered save folder vanished, reset to fallback")
	}
}
