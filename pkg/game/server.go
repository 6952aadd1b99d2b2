package game

import (
	"time"

	"github.com/sauerbraten/arbiter/pkg/definitions/playerstate"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// Server is the host the controller runs in.
type Server interface {
	// Broadcast sends a message to everyone.
	Broadcast(msg string)
	// Notify sends a message to a single player.
	Notify(p *roster.Player, msg string)
	// Players returns every player currently connected.
	Players() []*roster.Player
	// Intermission is called once when a match has finished, so the host
	// can wind it down and move on to the next one.
	Intermission()
}

// World places players.
type World interface {
	Teleport(p *roster.Player, to geom.Location)
	SetState(p *roster.Player, state playerstate.ID)
}

// Arena is what the controller reads from an arena definition.
type Arena interface {
	Name() string
	Teams() []*roster.Team
	Spawns() map[string][]geom.Location
	SpectatorSpawn() geom.Location
	MatchDuration() int
	Int(key string) int
	ApplyLoadout(p *roster.Player)
	Validate(required ...string) error
	PostStart()
}

// Scheduler runs periodic tasks on the host loop.
type Scheduler interface {
	// Every calls fn after delay and then once every period, until the
	// returned task is cancelled.
	Every(delay, period time.Duration, fn func()) Task
}

// Task is a scheduled periodic function. Once Cancel returns, the function
// will not run again.
type Task interface {
	Cancel()
	Pause()
	Resume()
	Paused() bool
}
