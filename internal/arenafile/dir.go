package arenafile

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/sauerbraten/arbiter/pkg/arena"
)

// Loader turns arena files into definitions.
type Loader struct {
	Inventory Inventory
	Equipment arena.Equipment
}

// Load reads and loads a single arena file.
func (l *Loader) Load(path string) (*arena.Definition, error) {
	f, err := ParseFile(path, l.Inventory)
	if err != nil {
		return nil, err
	}
	d, err := arena.Load(f, l.Equipment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Loaded is an arena and the file it was loaded from.
type Loaded struct {
	Path  string
	Arena *arena.Definition
}

// LoadDir loads every arena file in dir, keyed by arena name. Files that
// fail to load are logged and skipped; if two files define the same arena,
// the first in lexical order wins.
func (l *Loader) LoadDir(dir string) (map[string]Loaded, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read arena dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && isArenaFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	arenas := map[string]Loaded{}
	for _, path := range paths {
		d, err := l.Load(path)
		if err != nil {
			log.Println("skipping arena:", err)
			continue
		}
		if _, ok := arenas[d.Name()]; ok {
			log.Printf("skipping arena %s in %s: name already taken", d.Name(), path)
			continue
		}
		arenas[d.Name()] = Loaded{Path: path, Arena: d}
	}
	return arenas, nil
}
