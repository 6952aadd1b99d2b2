package host

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/sauerbraten/arbiter/internal/arenafile"
)

// Watch hands file changes reported by w to the loop until ctx is done, then
// closes w. It is meant to run in its own goroutine.
func (h *Host) Watch(ctx context.Context, w *arenafile.Watcher) {
	defer w.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			h.post(func() { h.Reload(path) })
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Println("watching arenas:", err)
		}
	}
}

// Reload loads the arena file at path again, or forgets its arena if the
// file is gone. A match running on the arena keeps the old version until
// it ends.
func (h *Host) Reload(path string) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		name, ok := h.paths[path]
		if !ok {
			return
		}
		delete(h.paths, path)
		delete(h.arenas, name)
		h.rot.Remove(name)
		log.Printf("arena %s removed (%s deleted)", name, path)
		return
	}

	d, err := h.loader.Load(path)
	if err != nil {
		log.Printf("not reloading %s: %v", path, err)
		return
	}

	if old, ok := h.paths[path]; ok && old != d.Name() {
		delete(h.arenas, old)
	}
	h.arenas[d.Name()] = d
	h.paths[path] = d.Name()

	if h.arena != nil && h.arena.Name() == d.Name() {
		log.Printf("arena %s reloaded, changes apply from the next match", d.Name())
	} else {
		log.Printf("arena %s reloaded", d.Name())
	}
}
