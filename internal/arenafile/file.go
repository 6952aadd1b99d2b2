// Package arenafile reads arena definitions from YAML files.
package arenafile

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/color"
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// Inventory receives the items of an arena's kit.
type Inventory interface {
	Give(p *roster.Player, s item.Stack)
}

type Team struct {
	Name   string          `yaml:"name"`
	Color  string          `yaml:"color"`
	Spawns []geom.Location `yaml:"spawns"`
}

type KitEntry struct {
	Item   string `yaml:"item"`
	Amount int    `yaml:"amount"`
}

// File is an arena written down in YAML:
//
//	name: keep
//	attributes:
//	  blockBreak: false
//	  matchDuration: 600
//	disabled_drops: [iron_sword, bow]
//	teams:
//	  - name: red
//	    color: red
//	    spawns:
//	      - {world: keep, x: 10, y: 64, z: 10}
//	spectator_spawn: {world: keep, y: 80}
//	kit:
//	  - {item: stone_sword, amount: 1}
//
// Leaving out disabled_drops disables the default list of armour, weapons
// and tools; an empty list lets everything drop.
type File struct {
	Name           string                 `yaml:"name"`
	Creators       []uuid.UUID            `yaml:"creators"`
	Attributes     map[string]interface{} `yaml:"attributes"`
	DisabledDrops  *[]string              `yaml:"disabled_drops"`
	Teams          []Team                 `yaml:"teams"`
	SpectatorSpawn *geom.Location         `yaml:"spectator_spawn"`
	Kit            []KitEntry             `yaml:"kit"`

	path string
	inv  Inventory
	kit  []item.Stack
}

var _ arena.Template = &File{}

// Parse decodes an arena file. Unknown keys are an error, so typos don't go
// unnoticed.
func Parse(r io.Reader, inv Inventory) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &File{inv: inv}
	if err := dec.Decode(f); err != nil {
		return nil, err
	}

	for _, e := range f.Kit {
		k, ok := item.Parse(e.Item)
		if !ok || k == item.Air {
			return nil, fmt.Errorf("kit: unknown item '%s'", e.Item)
		}
		amount := e.Amount
		if amount <= 0 {
			amount = 1
		}
		f.kit = append(f.kit, item.Stack{Kind: k, Amount: amount})
	}

	return f, nil
}

func ParseFile(path string, inv Inventory) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(bytes.NewReader(data), inv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path
	if f.Name == "" {
		f.Name = nameFromPath(path)
	}
	return f, nil
}

func (f *File) Path() string { return f.path }

func (f *File) ReadyAttributes(b *arena.Builder) {
	b.SetName(f.Name)
	b.SetCreators(f.Creators...)

	keys := make([]string, 0, len(f.Attributes))
	for k := range f.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.Set(k, f.Attributes[k])
	}

	if f.DisabledDrops == nil {
		b.SetDisabledDrops(item.DefaultDisabledDrops()...)
	} else {
		kinds := make([]item.Kind, 0, len(*f.DisabledDrops))
		for _, name := range *f.DisabledDrops {
			k, ok := item.Parse(name)
			if !ok {
				log.Printf("arena %s: unknown item '%s' in disabled drops", f.Name, name)
				continue
			}
			kinds = append(kinds, k)
		}
		b.SetDisabledDrops(kinds...)
	}

	for _, t := range f.Teams {
		if t.Name == "" {
			log.Printf("arena %s: skipping team without a name", f.Name)
			continue
		}
		c, ok := color.Parse(t.Color)
		if !ok && t.Color != "" {
			log.Printf("arena %s: team %s has unknown color '%s'", f.Name, t.Name, t.Color)
		}
		b.RegisterTeam(roster.NewTeam(t.Name, c))
	}
}

func (f *File) ReadySpawns(b *arena.Builder) {
	for _, t := range f.Teams {
		team, ok := b.Team(t.Name)
		if !ok {
			continue
		}
		for _, spawn := range t.Spawns {
			b.AddTeamSpawn(team, spawn)
		}
	}
	if f.SpectatorSpawn != nil {
		b.SetSpectatorSpawn(*f.SpectatorSpawn)
	}
}

func (f *File) ApplyInventory(p *roster.Player) {
	if f.inv == nil {
		return
	}
	for _, s := range f.kit {
		f.inv.Give(p, s)
	}
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isArenaFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
