package localstore

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports writes to a store path made by other processes. It plays
// the role the browser's storage event plays for other tabs: a change
// signal, not a payload. Notifications are coalesced, so a burst of writes
// may surface as a single change.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string
	ch   chan struct{}
}

func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory: the file store replaces the file node on every
	// write, which would silently drop a watch on the file itself.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	w := &Watcher{fw: fw, path: filepath.Clean(path), ch: make(chan struct{}, 1)}
	go w.run()
	return w, nil
}

// Changes delivers one signal per observed (coalesced) change. The channel
// closes when the watcher is closed.
func (w *Watcher) Changes() <-chan struct{} { return w.ch }

func (w *Watcher) Close() error { return w.fw.Close() }

func (w *Watcher) run() {
	events, errs := w.fw.Events, w.fw.Errors
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.ch <- struct{}{}:
			default:
			}
		case _, ok := <-errs:
			if !ok {
				errs = nil
			}
		}
	}
	close(w.ch)
}
