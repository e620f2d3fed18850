// Package watcher reports changes to design files so open lists can reload.
package watcher

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Debounce is how long the watcher waits after the last event before
// reporting a batch.
const Debounce = 200 * time.Millisecond

// ChangeCallback receives the design files touched since the last call,
// sorted and without duplicates.
type ChangeCallback func(paths []string)

// Watch watches dirs recursively until ctx is cancelled. Events for paths
// for which match returns true are collected and delivered to cb once no new event
// has arrived for Debounce. Directories that do not exist are skipped.
func Watch(ctx context.Context, dirs []string, match func(path string) bool, log logrus.FieldLogger, cb ChangeCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, dir := range dirs {
		if err := addDirsRecursive(w, dir); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.WithField("dir", dir).Warn("design directory does not exist, not watching")
				continue
			}
			return err
		}
	}
	log.WithField("dirs", dirs).Debug("watcher started")

	var (
		timer   *time.Timer
		timerCh <-chan time.Time
		pending = make(map[string]struct{})
	)
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(Debounce)
			timerCh = timer.C
		} else {
			timer.Reset(Debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			log.Debug("watcher stopped")
			return nil

		case <-timerCh:
			if len(pending) == 0 {
				continue
			}
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			slices.Sort(paths)
			clear(pending)
			log.WithField("count", len(paths)).Debug("design files changed")
			if cb != nil {
				cb(paths)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addDirsRecursive(w, ev.Name); err != nil {
						log.WithError(err).WithField("path", ev.Name).Warn("failed to watch new directory")
					}
					// Files moved in with the directory produce no events of their own.
					_ = filepath.WalkDir(ev.Name, func(path string, d fs.DirEntry, err error) error {
						if err == nil && !d.IsDir() && match(path) {
							pending[path] = struct{}{}
						}
						return nil
					})
					schedule()
					continue
				}
			}

			if ev.Op == fsnotify.Chmod || !match(ev.Name) {
				continue
			}
			pending[ev.Name] = struct{}{}
			schedule()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Error("watcher error")
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
