package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andrewpillar/layerlist"
)

// watcher re-validates a preset file each time it changes.
type watcher struct {
	log *logrus.Logger

	name     string
	opts     []layerlist.Option
	debounce time.Duration

	// onLoad is called with the result of each validation.
	onLoad func(layerlist.Presets, error)
}

func (w *watcher) load() {
	presets, err := layerlist.LoadPresets(w.name, w.opts...)

	if err != nil {
		w.log.WithError(err).WithField("file", w.name).Error("invalid preset file")
	} else {
		w.log.WithFields(logrus.Fields{
			"file":    w.name,
			"presets": len(presets),
		}).Info("preset file is valid")
	}

	if w.onLoad != nil {
		w.onLoad(presets, err)
	}
}

// relevant reports whether the event touches the watched file. The parent
// directory is watched so editors that replace the file on save are seen.
func (w *watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.name) {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

// run blocks until ctx is cancelled.
func (w *watcher) run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()

	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.name)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.name, err)
	}

	w.load()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("watcher stopped")
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if !w.relevant(ev) {
				continue
			}

			w.log.WithFields(logrus.Fields{
				"file": ev.Name,
				"op":   ev.Op.String(),
			}).Debug("file event")

			timer.Reset(w.debounce)
		case <-timer.C:
			w.load()
		case err, ok := <-fsw.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.WithError(err).Warn("file watcher error")
		}
	}
}

func newWatchCommand(a *app) *cobra.Command {
	var (
		env      bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Validate a preset file every time it is written",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := &watcher{
				log:      a.log,
				name:     args[0],
				debounce: debounce,
			}

			if env {
				w.opts = append(w.opts, layerlist.Envvars)
			}
			return w.run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&env, "env", false, "Expand ${VAR} references in the preset file")
	flags.DurationVar(&debounce, "debounce", 100*time.Millisecond, "Time to wait for writes to settle before validating")

	return cmd
}
