package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to a config file so the scene section can be
// applied without restarting.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
}

// NewWatcher watches the directory holding path. Editors often replace
// the file instead of writing it in place, so the file itself is not watched.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{path: abs, fs: fs}, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Poll drains pending events without blocking. When the file changed it
// is re-read and its scene section returned with changed set.
func (w *Watcher) Poll() (scene SceneConfig, changed bool, err error) {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return w.finish(changed)
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				changed = true
			}
		case werr, ok := <-w.fs.Errors:
			if ok && werr != nil {
				return SceneConfig{}, false, fmt.Errorf("config watcher: %w", werr)
			}
		default:
			return w.finish(changed)
		}
	}
}

func (w *Watcher) finish(changed bool) (SceneConfig, bool, error) {
	if !changed {
		return SceneConfig{}, false, nil
	}
	scene, err := LoadScene(w.path)
	if err != nil {
		return SceneConfig{}, false, err
	}
	return scene, true, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
