package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports asset files that were created or rewritten under a directory.
// Changes are delivered on a buffered channel and collected on the game thread with Poll.
type Watcher struct {
	root    string
	fsw     *fsnotify.Watcher
	changes chan string
	done    chan struct{}
	logger  *log.Logger
	once    sync.Once
}

// Watch starts watching dir and every directory below it.
func Watch(dir string, logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:    dir,
		fsw:     fsw,
		changes: make(chan string, 64),
		done:    make(chan struct{}),
		logger:  logger,
	}
	if err := w.addRecursive(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsw.Add(path)
		}
		return nil
	})
}

func (w *Watcher) run() {
	for {
		select {
		case e, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(e)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("asset watcher", "err", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(e fsnotify.Event) {
	if e.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(e.Name); err == nil && info.IsDir() {
			if err := w.addRecursive(e.Name); err != nil {
				w.logger.Warn("watch directory", "path", e.Name, "err", err)
			}
			return
		}
	}
	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || TypeOf(e.Name) == TypeNone {
		return
	}

	rel, err := filepath.Rel(w.root, e.Name)
	if err != nil {
		return
	}
	select {
	case w.changes <- filepath.ToSlash(rel):
	default:
		// A full queue already holds a reload request.
	}
}

// Changes exposes the raw change stream.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Poll returns the distinct asset names changed since the last call without blocking.
func (w *Watcher) Poll() []string {
	var names []string
	seen := map[string]bool{}
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		default:
			return names
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}
