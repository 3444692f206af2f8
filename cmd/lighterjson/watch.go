package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher wraps fsnotify to re-minify a file or directory tree on write
// events, adapted from cmd/minify's Watcher to re-task it onto
// collectJSONFiles's ".json"-only selection instead of the teacher's
// format-agnostic mimetype dispatch.
type Watcher struct {
	watcher   *fsnotify.Watcher
	dirs      map[string]bool
	paths     map[string]bool
	recursive bool
}

// NewWatcher returns a new Watcher.
func NewWatcher(recursive bool) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{watcher, map[string]bool{}, map[string]bool{}, recursive}, nil
}

// Close closes the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// AddPath adds a new path to watch: a file's containing directory, or a
// directory's whole subtree when recursive.
func (w *Watcher) AddPath(root string) error {
	w.paths[root] = true

	info, err := os.Lstat(root)
	if err != nil {
		return err
	}

	if info.Mode().IsRegular() {
		dir := filepath.Dir(root)
		if w.dirs[dir] {
			return nil
		}
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
		return nil
	}
	if !info.Mode().IsDir() || !w.recursive {
		return nil
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.dirs[path] {
			return fs.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		w.dirs[path] = true
		return nil
	})
}

// Run watches for write events on .json files and streams their paths,
// debouncing repeated writes to the same file within 100ms (a save often
// triggers more than one write event).
func (w *Watcher) Run() chan string {
	files := make(chan string, 10)
	go func() {
		changetimes := map[string]time.Time{}
		for w.watcher.Events != nil && w.watcher.Errors != nil {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					w.watcher.Events = nil
					break
				}

				watched := false
				for path := range w.paths {
					if info, err := os.Lstat(path); err == nil && info.IsDir() {
						if _, err := filepath.Rel(path, event.Name); err == nil {
							watched = true
							break
						}
					} else if path == filepath.Clean(event.Name) {
						watched = true
						break
					}
				}
				if !watched {
					break
				}

				info, err := os.Lstat(event.Name)
				if err != nil {
					break
				}
				if info.Mode().IsDir() && w.recursive {
					if event.Op&fsnotify.Create == fsnotify.Create {
						if err := w.AddPath(event.Name); err != nil {
							Error.Println(err)
						}
					}
					break
				}
				if !info.Mode().IsRegular() || filepath.Ext(event.Name) != ".json" {
					break
				}
				if event.Op&fsnotify.Write != fsnotify.Write {
					break
				}
				if t, ok := changetimes[event.Name]; ok && time.Since(t) < 100*time.Millisecond {
					break
				}
				time.Sleep(100 * time.Millisecond) // wait to make sure write is finished
				files <- event.Name
				changetimes[event.Name] = time.Now()
			case err, ok := <-w.watcher.Errors:
				if !ok {
					w.watcher.Errors = nil
					break
				}
				Error.Println(err)
			}
		}
		close(files)
	}()
	return files
}
