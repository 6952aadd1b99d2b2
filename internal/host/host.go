// Package host runs matches back to back: it picks arenas from the
// rotation, drives the mode controllers and takes operator commands.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/sauerbraten/arbiter/internal/arenafile"
	"github.com/sauerbraten/arbiter/internal/config"
	"github.com/sauerbraten/arbiter/internal/history"
	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/event"
	"github.com/sauerbraten/arbiter/pkg/game"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/maprot"
	"github.com/sauerbraten/arbiter/pkg/modes"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

var ErrUnknownArena = errors.New("unknown arena")

// Host is not safe for concurrent use: all methods except Watch must be
// called on the loop that post hands work to.
type Host struct {
	*State

	conf   *config.Config
	sched  game.Scheduler
	post   func(func()) bool
	out    io.Writer
	bus    *event.Bus
	loader *arenafile.Loader
	rot    *maprot.Rotation

	history *history.Store

	arenas map[string]*arena.Definition
	paths  map[string]string // arena file path → arena name

	controllers map[gamemode.ID]*game.Controller
	ctrl        *game.Controller
	arena       *arena.Definition

	generation   int
	intermission pausableTimer
	newTimer     func(d time.Duration, fn func()) pausableTimer

	players     []*roster.Player
	positions   map[*roster.Player]geom.Location
	inventories map[*roster.Player][]item.Stack
}

var (
	_ game.Server         = &Host{}
	_ game.World          = &Host{}
	_ arena.Equipment     = &Host{}
	_ arenafile.Inventory = &Host{}
)

// New creates a host. Matches tick on sched; post must queue a function
// for execution on the loop the host runs on.
func New(conf *config.Config, sched game.Scheduler, post func(func()) bool, out io.Writer) *Host {
	h := &Host{
		State: &State{
			Current: maprot.Entry{Mode: conf.FallbackMode},
			UpSince: time.Now(),
		},
		conf:        conf,
		sched:       sched,
		post:        post,
		out:         out,
		bus:         event.NewBus(),
		rot:         maprot.NewRotation(conf.Rotation, nil),
		arenas:      map[string]*arena.Definition{},
		paths:       map[string]string{},
		controllers: map[gamemode.ID]*game.Controller{},
		newTimer:    newIntermissionTimer,
		positions:   map[*roster.Player]geom.Location{},
		inventories: map[*roster.Player][]item.Stack{},
	}
	h.loader = &arenafile.Loader{Inventory: h, Equipment: h}
	return h
}

func (h *Host) SetHistory(s *history.Store) { h.history = s }

// LoadArenas loads all arena files from the configured directory.
func (h *Host) LoadArenas() error {
	loaded, err := h.loader.LoadDir(h.conf.ArenaDir)
	if err != nil {
		return err
	}
	for name, l := range loaded {
		h.arenas[name] = l.Arena
		h.paths[l.Path] = name
	}
	log.Printf("loaded %d arenas from %s", len(loaded), h.conf.ArenaDir)
	return nil
}

// AddArena makes d available for matches, replacing an arena of the same name.
func (h *Host) AddArena(d *arena.Definition) { h.arenas[d.Name()] = d }

func (h *Host) Bus() *event.Bus { return h.bus }

func (h *Host) Controller() *game.Controller { return h.ctrl }

// Start begins the first match, in the fallback mode.
func (h *Host) Start() error {
	return h.cycle()
}

// cycle starts the next match from the rotation. Arenas that fail to start
// are skipped.
func (h *Host) cycle() error {
	current := h.Current
	var err error
	for i := 0; i <= len(h.rot.Pool(current.Mode)); i++ {
		var next maprot.Entry
		next, err = h.rot.Next(current)
		if err != nil {
			break
		}
		if err = h.StartMatch(next); err == nil {
			h.SetManually = false
			return nil
		}
		log.Printf("could not start %s: %v", next, err)
		current = next
	}
	if current.Mode != h.conf.FallbackMode {
		log.Printf("falling back to %s", h.conf.FallbackMode)
		h.Current = maprot.Entry{Mode: h.conf.FallbackMode}
		return h.cycle()
	}
	return fmt.Errorf("no playable arena: %w", err)
}

// StartMatch ends the current match, if any, and starts e.
func (h *Host) StartMatch(e maprot.Entry) error {
	d, ok := h.arenas[e.Arena]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownArena, e.Arena)
	}
	newMode := modes.New(e.Mode)
	if newMode == nil {
		return &gamemode.UnknownModeError{Name: e.Mode.String()}
	}

	h.endMatch()

	c, ok := h.controllers[e.Mode]
	if !ok {
		c = game.NewController(h, h, h.sched, h.bus, newMode)
		h.controllers[e.Mode] = c
	}

	d.Activate(h.bus)
	if err := c.Activate(d); err != nil {
		d.Deactivate()
		return err
	}

	h.ctrl, h.arena = c, d
	h.Current = e
	h.Matches++
	h.generation++

	mode := c.Mode()
	h.Broadcast(fmt.Sprintf("Now playing %s %s on %s. %s! %s!",
		mode.Article(), mode.FullName(), d.Name(), mode.OffenseDescription(), mode.DefenseDescription()))

	// players keep their intent to play across matches
	for _, p := range h.players {
		if p.Joined {
			c.HandleEntry(p)
		}
	}
	return nil
}

func (h *Host) endMatch() {
	if h.intermission != nil {
		h.intermission.Stop()
		h.intermission = nil
	}
	if h.ctrl != nil {
		h.ctrl.Deactivate()
		h.ctrl = nil
	}
	if h.arena != nil {
		h.arena.Deactivate()
		h.arena = nil
	}
	for p := range h.inventories {
		delete(h.inventories, p)
	}
}

// Shutdown ends the running match and closes the history store.
func (h *Host) Shutdown() {
	h.endMatch()
	if h.history != nil {
		if err := h.history.Close(); err != nil {
			log.Println("closing history:", err)
		}
	}
}

// Broadcast, Notify, Players and Intermission make the host the server the
// controllers run in.

func (h *Host) Broadcast(msg string) {
	fmt.Fprintln(h.out, msg)
}

func (h *Host) Notify(p *roster.Player, msg string) {
	fmt.Fprintf(h.out, "[%s] %s\n", p.Name, msg)
}

func (h *Host) Players() []*roster.Player {
	players := make([]*roster.Player, len(h.players))
	copy(players, h.players)
	return players
}

// Intermission records the finished match and starts the next one after
// the configured pause.
func (h *Host) Intermission() {
	h.record()

	gen := h.generation
	d := time.Duration(h.conf.IntermissionSeconds) * time.Second
	h.intermission = h.newTimer(d, func() {
		h.post(func() {
			if h.generation != gen {
				// an operator started another match in the meantime
				return
			}
			h.intermission = nil
			if err := h.cycle(); err != nil {
				log.Println(err)
			}
		})
	})
	h.intermission.Start()
	h.Broadcast(fmt.Sprintf("The next match starts in %d seconds.", h.conf.IntermissionSeconds))
}

func (h *Host) InIntermission() bool { return h.intermission != nil }

func (h *Host) record() {
	if h.history == nil || h.ctrl == nil {
		return
	}

	m := history.Match{
		ID:             h.ctrl.MatchID(),
		Mode:           h.Current.Mode.String(),
		Arena:          h.Current.Arena,
		ElapsedSeconds: h.ctrl.ElapsedSeconds(),
		EndedAt:        time.Now(),
	}
	for _, t := range h.ctrl.Teams() {
		m.Players += t.Size()
	}
	if r, ok := h.ctrl.Mode().(modes.Resulter); ok {
		m.Winner = r.Winner()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.history.Record(ctx, m); err != nil {
		log.Println(err)
	}
}
