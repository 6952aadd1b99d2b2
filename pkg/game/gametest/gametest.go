// Package gametest provides fakes of the host collaborators so that matches
// can be driven by hand in tests.
package gametest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/color"
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/definitions/playerstate"
	"github.com/sauerbraten/arbiter/pkg/game"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// Task is a periodic task that only runs when its scheduler is ticked.
type Task struct {
	Delay, Period time.Duration

	fn        func()
	cancelled bool
	paused    bool
}

func (t *Task) Cancel()         { t.cancelled = true }
func (t *Task) Cancelled() bool { return t.cancelled }
func (t *Task) Pause()          { t.paused = true }
func (t *Task) Resume()         { t.paused = false }
func (t *Task) Paused() bool    { return t.paused }

// Scheduler hands out Tasks and fires them on Tick.
type Scheduler struct {
	tasks []*Task
}

var _ game.Scheduler = &Scheduler{}

func (s *Scheduler) Every(delay, period time.Duration, fn func()) game.Task {
	t := &Task{Delay: delay, Period: period, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Tick fires every live, unpaused task n times.
func (s *Scheduler) Tick(n int) {
	for i := 0; i < n; i++ {
		tasks := make([]*Task, len(s.tasks))
		copy(tasks, s.tasks)
		for _, t := range tasks {
			if !t.cancelled && !t.paused {
				t.fn()
			}
		}
	}
}

func (s *Scheduler) Tasks() []*Task { return s.tasks }

// Live counts the tasks that have not been cancelled.
func (s *Scheduler) Live() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Server records broadcasts and notices.
type Server struct {
	Broadcasts     []string
	Notices        map[*roster.Player][]string
	Intermissions  int
	OnIntermission func()

	players []*roster.Player
}

var _ game.Server = &Server{}

func NewServer(players ...*roster.Player) *Server {
	return &Server{
		Notices: map[*roster.Player][]string{},
		players: players,
	}
}

func (s *Server) Connect(p *roster.Player) { s.players = append(s.players, p) }

func (s *Server) Broadcast(msg string) { s.Broadcasts = append(s.Broadcasts, msg) }

func (s *Server) Notify(p *roster.Player, msg string) {
	s.Notices[p] = append(s.Notices[p], msg)
}

func (s *Server) Players() []*roster.Player {
	players := make([]*roster.Player, len(s.players))
	copy(players, s.players)
	return players
}

func (s *Server) Intermission() {
	s.Intermissions++
	if s.OnIntermission != nil {
		s.OnIntermission()
	}
}

// LastNotice returns the latest message sent to p, or "".
func (s *Server) LastNotice(p *roster.Player) string {
	notices := s.Notices[p]
	if len(notices) == 0 {
		return ""
	}
	return notices[len(notices)-1]
}

// World records where players were put.
type World struct {
	Positions map[*roster.Player]geom.Location
	States    map[*roster.Player]playerstate.ID
}

var _ game.World = &World{}

func NewWorld() *World {
	return &World{
		Positions: map[*roster.Player]geom.Location{},
		States:    map[*roster.Player]playerstate.ID{},
	}
}

func (w *World) Teleport(p *roster.Player, to geom.Location) { w.Positions[p] = to }

func (w *World) SetState(p *roster.Player, state playerstate.ID) { w.States[p] = state }

// Equipment counts inventory clears and updates.
type Equipment struct {
	Cleared map[*roster.Player]int
	Updated map[*roster.Player]int
}

var _ arena.Equipment = &Equipment{}

func NewEquipment() *Equipment {
	return &Equipment{
		Cleared: map[*roster.Player]int{},
		Updated: map[*roster.Player]int{},
	}
}

func (e *Equipment) Clear(p *roster.Player)  { e.Cleared[p]++ }
func (e *Equipment) Update(p *roster.Player) { e.Updated[p]++ }

var teamColors = []color.ID{color.Red, color.Blue, color.Green, color.Yellow}

// Arena is a configurable arena template. Team i spawns at x = 100*i + j for
// its j-th spawn point; spectators spawn at the origin of SpectatorWorld.
type Arena struct {
	Name          string
	TeamNames     []string
	SpawnsPerTeam int
	Attributes    map[string]interface{}
	DisabledDrops []item.Kind

	Kits map[*roster.Player]int
}

var _ arena.Template = &Arena{}

func NewArena(name string, teams ...string) *Arena {
	return &Arena{
		Name:          name,
		TeamNames:     teams,
		SpawnsPerTeam: 1,
		Attributes:    map[string]interface{}{},
		Kits:          map[*roster.Player]int{},
	}
}

func (a *Arena) ReadyAttributes(b *arena.Builder) {
	b.SetName(a.Name)
	for key, value := range a.Attributes {
		b.Set(key, value)
	}
	if a.DisabledDrops != nil {
		b.SetDisabledDrops(a.DisabledDrops...)
	}
	for i, name := range a.TeamNames {
		b.RegisterTeam(roster.NewTeam(name, teamColors[i%len(teamColors)]))
	}
}

func (a *Arena) ReadySpawns(b *arena.Builder) {
	for i, name := range a.TeamNames {
		t, _ := b.Team(name)
		for j := 0; j < a.SpawnsPerTeam; j++ {
			b.AddTeamSpawn(t, SpawnOf(i, j))
		}
	}
	b.SetSpectatorSpawn(geom.Location{World: SpectatorWorld})
}

func (a *Arena) ApplyInventory(p *roster.Player) { a.Kits[p]++ }

const SpectatorWorld = "spectators"

// SpawnOf is the j-th spawn point of the i-th team of an Arena.
func SpawnOf(i, j int) geom.Location {
	return geom.Location{World: "arena", X: float64(100*i + j)}
}

// MustLoad loads a and fails the test on error.
func MustLoad(t testing.TB, a *Arena, eq arena.Equipment) *arena.Definition {
	t.Helper()
	d, err := arena.Load(a, eq)
	require.NoError(t, err)
	return d
}

// Players creates n players named p0, p1, ...
func Players(n int) []*roster.Player {
	players := make([]*roster.Player, n)
	for i := range players {
		players[i] = roster.NewPlayer(fmt.Sprintf("p%d", i))
	}
	return players
}

// Mode records the hook calls the controller makes.
type Mode struct {
	C *game.Controller

	Required []string

	Initialized       int
	Resets            int
	Ticks             int
	ForceEnds         int
	ScoreboardUpdates int

	Joins  []*roster.Player
	Leaves []*roster.Player
	Kills  [][2]*roster.Player

	// TickElapsed records the controller's elapsed seconds at each Tick.
	TickElapsed []int
	// FinishOnForceEnd makes OnForceEnd finish the match.
	FinishOnForceEnd bool
}

var (
	_ game.Mode              = &Mode{}
	_ game.AttributeRequirer = &Mode{}
)

// NewMode can be passed to game.NewController.
func NewMode(c *game.Controller) game.Mode { return &Mode{C: c} }

func (m *Mode) RequiredAttributes() []string { return m.Required }

func (m *Mode) Reset()            { m.Resets++ }
func (m *Mode) Initialize()       { m.Initialized++ }
func (m *Mode) UpdateScoreboard() { m.ScoreboardUpdates++ }

func (*Mode) ShortName() string          { return "test" }
func (*Mode) FullName() string           { return "Test Mode" }
func (*Mode) OffenseDescription() string { return "attack" }
func (*Mode) DefenseDescription() string { return "defend" }
func (*Mode) Article() string            { return "a" }

func (m *Mode) OnKill(victim, killer *roster.Player) {
	m.Kills = append(m.Kills, [2]*roster.Player{victim, killer})
}

func (m *Mode) OnLeave(p *roster.Player) { m.Leaves = append(m.Leaves, p) }
func (m *Mode) OnJoin(p *roster.Player)  { m.Joins = append(m.Joins, p) }

func (m *Mode) OnForceEnd() bool {
	m.ForceEnds++
	if m.FinishOnForceEnd {
		if !m.C.IsActive() {
			return false
		}
		m.C.Finish()
	}
	return true
}

func (m *Mode) Tick() {
	m.Ticks++
	m.TickElapsed = append(m.TickElapsed, m.C.ElapsedSeconds())
}
