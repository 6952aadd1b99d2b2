package game

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sauerbraten/arbiter/pkg/definitions/color"
	"github.com/sauerbraten/arbiter/pkg/event"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// SpectatorTeam is the name of the spectators' pseudo-team and group.
const SpectatorTeam = "Spectators"

var (
	ErrNotIdle = errors.New("game: controller is not idle")
	ErrNoArena = errors.New("game: no arena given")
)

type State int

const (
	Idle State = iota
	Activating
	Active
	Deactivating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Activating:
		return "activating"
	case Active:
		return "active"
	case Deactivating:
		return "deactivating"
	default:
		return "unknown"
	}
}

// Controller runs matches of one game mode, one at a time. A controller is
// reused: after Deactivate it is ready for the next Activate.
//
// A controller is not safe for concurrent use. All calls, event deliveries
// and ticks must happen on the host loop.
type Controller struct {
	server Server
	world  World
	sched  Scheduler
	bus    *event.Bus
	mode   Mode
	rng    *rand.Rand

	state      State
	active     bool
	permaDeath bool
	elapsed    int
	matchID    ulid.ULID

	arena      Arena
	task       Task
	score      *roster.Scoreboard
	spectators *roster.Team

	// runtime copies of the arena's teams (in declaration order) and spawns
	teams  map[string]*roster.Team
	order  []*roster.Team
	spawns map[string][]geom.Location
}

// NewController creates an idle controller. newMode is called once with the
// new controller to construct the mode it runs.
func NewController(s Server, w World, sched Scheduler, bus *event.Bus, newMode func(*Controller) Mode) *Controller {
	c := &Controller{
		server: s,
		world:  w,
		sched:  sched,
		bus:    bus,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		teams:  map[string]*roster.Team{},
		spawns: map[string][]geom.Location{},
	}
	c.mode = newMode(c)
	return c
}

// Activate starts a match on a. The controller must be idle.
func (c *Controller) Activate(a Arena) error {
	if c.state != Idle {
		log.Printf("not activating %s: controller is %s", c.mode.ShortName(), c.state)
		return ErrNotIdle
	}
	if a == nil {
		log.Printf("not activating %s: no arena", c.mode.ShortName())
		return ErrNoArena
	}

	var required []string
	if r, ok := c.mode.(AttributeRequirer); ok {
		required = r.RequiredAttributes()
	}
	if err := a.Validate(required...); err != nil {
		log.Printf("not activating %s on %s: %v", c.mode.ShortName(), a.Name(), err)
		return err
	}

	c.state = Activating
	c.arena = a
	c.matchID = ulid.Make()
	if c.bus != nil {
		c.bus.Register(c)
	}

	for _, t := range a.Teams() {
		rt := t.Clone()
		c.teams[rt.Name] = rt
		c.order = append(c.order, rt)
	}
	c.spawns = a.Spawns()
	c.active = true

	c.score = roster.NewScoreboard()
	c.score.Title = c.mode.FullName()
	for _, t := range c.order {
		g, err := c.score.RegisterGroup(t.Name)
		if err != nil {
			log.Printf("arena %s: could not register group for team %s: %v", a.Name(), t.Name, err)
			continue
		}
		g.Prefix = t.Color
		g.CanSeeFriendlyInvisibles = true
		g.AllowFriendlyFire = false
		t.SetGroup(g)
	}

	c.spectators = roster.NewTeam(SpectatorTeam, color.Spectator)
	if g, err := c.score.RegisterGroup(SpectatorTeam); err != nil {
		log.Printf("arena %s: could not register spectator group: %v", a.Name(), err)
	} else {
		g.Prefix = color.Spectator
		g.CanSeeFriendlyInvisibles = true
		g.AllowFriendlyFire = false
		c.spectators.SetGroup(g)
	}
	for _, p := range c.server.Players() {
		p.Team = nil
		c.spectators.Add(p)
	}

	c.mode.Initialize()
	a.PostStart()

	c.task = c.sched.Every(0, time.Second, c.tick)
	c.state = Active

	log.Printf("match %s started: %s on %s", c.matchID, c.mode.ShortName(), a.Name())
	return nil
}

// Deactivate tears the current match down. Calling it on an idle controller
// does nothing.
func (c *Controller) Deactivate() {
	if c.state == Idle {
		return
	}
	c.state = Deactivating

	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
	if c.bus != nil {
		c.bus.Unregister(c)
	}
	c.active = false
	c.mode.Reset()
	c.resetLocalValues()
	c.arena = nil

	c.state = Idle
	log.Printf("match %s torn down", c.matchID)
}

func (c *Controller) resetLocalValues() {
	c.elapsed = 0
	c.permaDeath = false

	for _, t := range c.order {
		t.ForEach(func(p *roster.Player) {
			if p.Team == t {
				p.Team = nil
			}
		})
		t.Clear()
	}
	for name := range c.teams {
		delete(c.teams, name)
	}
	c.order = c.order[:0]
	for name := range c.spawns {
		delete(c.spawns, name)
	}

	if c.spectators != nil {
		c.spectators.Clear()
		c.spectators = nil
	}
	c.score = nil
}

// Finish marks the match as over, e.g. because a mode's objective was met.
// The host is told via Intermission and is expected to deactivate the
// controller. Calling Finish on a match that is not live does nothing.
func (c *Controller) Finish() {
	if !c.active {
		return
	}
	c.active = false
	for name := range c.spawns {
		delete(c.spawns, name)
	}
	log.Printf("match %s finished after %ds", c.matchID, c.elapsed)
	c.server.Intermission()
}

// HandleEvent receives world events while the controller is registered on
// the bus.
func (c *Controller) HandleEvent(ev event.Event) {
	if !c.active {
		return
	}
	switch e := ev.(type) {
	case *event.Death:
		if e.Victim == nil {
			return
		}
		c.mode.OnKill(e.Victim, e.Killer)
	}
}

// Connect puts a player who connected during a live match with the spectators.
func (c *Controller) Connect(p *roster.Player) {
	if p == nil || c.state != Active || c.spectators == nil {
		return
	}
	if p.Team == nil {
		c.spectators.Add(p)
	}
}

// Disconnect takes a leaving player out of the match and all groups.
func (c *Controller) Disconnect(p *roster.Player) {
	if p == nil || c.state != Active {
		return
	}
	if p.Team != nil {
		p.Joined = false
		c.HandleEntry(p)
	}
	if p.Team != nil {
		// the match is over, so HandleEntry did nothing
		p.Team.Remove(p)
		p.Team = nil
	}
	if c.spectators != nil {
		c.spectators.Remove(p)
	}
}

func (c *Controller) IsActive() bool { return c.active }

func (c *Controller) State() State { return c.state }

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Arena() Arena { return c.arena }

func (c *Controller) MatchID() ulid.ULID { return c.matchID }

func (c *Controller) ElapsedSeconds() int { return c.elapsed }

// SetElapsedSeconds moves the match clock, e.g. for operators and tests.
func (c *Controller) SetElapsedSeconds(seconds int) {
	if seconds < 0 {
		log.Printf("ignoring negative elapsed time %d", seconds)
		return
	}
	c.elapsed = seconds
}

// SecondsLeft returns how long the match has left to run.
func (c *Controller) SecondsLeft() int {
	if c.arena == nil {
		return 0
	}
	return c.arena.MatchDuration() - c.elapsed
}

func (c *Controller) PermaDeath() bool { return c.permaDeath }

// SetPermaDeath makes leaving final for the rest of the match.
func (c *Controller) SetPermaDeath(permaDeath bool) { c.permaDeath = permaDeath }

// Teams returns the match's teams in the order the arena declared them.
func (c *Controller) Teams() []*roster.Team {
	teams := make([]*roster.Team, len(c.order))
	copy(teams, c.order)
	return teams
}

func (c *Controller) Team(name string) (*roster.Team, bool) {
	t, ok := c.teams[name]
	return t, ok
}

func (c *Controller) Spectators() *roster.Team { return c.spectators }

func (c *Controller) Scoreboard() *roster.Scoreboard { return c.score }

func (c *Controller) Broadcast(msg string) { c.server.Broadcast(msg) }

func (c *Controller) Notify(p *roster.Player, msg string) { c.server.Notify(p, msg) }

func (c *Controller) Pause() {
	if c.task != nil && !c.task.Paused() {
		c.task.Pause()
	}
}

func (c *Controller) Resume() {
	if c.task != nil && c.task.Paused() {
		c.task.Resume()
	}
}

func (c *Controller) Paused() bool { return c.task != nil && c.task.Paused() }
