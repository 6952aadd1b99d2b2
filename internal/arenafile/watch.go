package arenafile

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports arena files that were written, created, renamed or
// removed. A burst of events for the same file is reported once, after
// the file has been quiet for a moment.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// settle is how long a file has to stay quiet before it is reported.
const settle = 100 * time.Millisecond

func (w *Watcher) run() {
	// settled receives paths whose timer ran out
	settled := make(chan string)
	pending := make(map[string]*time.Timer)

	defer func() {
		for _, t := range pending {
			t.Stop()
		}
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isArenaFile(event.Name) {
				continue
			}
			if t, ok := pending[event.Name]; ok {
				t.Reset(settle)
				continue
			}
			name := event.Name
			pending[name] = time.AfterFunc(settle, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-settled:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			}
		case <-w.closeCh:
			return
		}
	}
}
