// Package event defines the world events the host delivers while a match is
// running, and the bus that delivers them to registered listeners.
package event

import (
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

type Event interface{}

// Cancellable is embedded by events whose effect the host undoes when a
// listener cancels them.
type Cancellable struct {
	cancelled bool
}

func (c *Cancellable) Cancel()         { c.cancelled = true }
func (c *Cancellable) Cancelled() bool { return c.cancelled }

// Explosion is terrain damage caused by an explosive. The host destroys
// every block left in Blocks after dispatch.
type Explosion struct {
	Origin geom.Vector
	Blocks []geom.Vector
}

// Death is a player dying. Killer is nil when the death was not caused by
// another player. The host drops every stack in Drops that is not item.Air.
type Death struct {
	Victim *roster.Player
	Killer *roster.Player
	Drops  []item.Stack
}

// BlockSpread is a block spreading onto an adjacent one, e.g. fire or grass.
type BlockSpread struct {
	Cancellable
	Block  geom.Vector
	Source item.Kind
}

type IgniteCause int

const (
	IgniteSpread IgniteCause = iota
	IgniteFlintAndSteel
	IgniteLava
	IgniteLightning
	IgniteExplosion
)

type BlockIgnite struct {
	Cancellable
	Block geom.Vector
	Cause IgniteCause
}

// BlockBurn is a block being destroyed by fire.
type BlockBurn struct {
	Cancellable
	Block geom.Vector
}

type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityMob
	EntityItemFrame
	EntityPainting
)

// Hanging reports whether entities of kind k are wall decorations.
func (k EntityKind) Hanging() bool {
	return k == EntityItemFrame || k == EntityPainting
}

type BreakCause int

const (
	BreakPhysics BreakCause = iota
	BreakObstruction
	BreakExplosion
	BreakEntity
)

// HangingBreak is a wall decoration breaking for an environmental reason.
type HangingBreak struct {
	Cancellable
	Entity EntityKind
	Cause  BreakCause
}

// EntityDamage is any entity taking damage, including decorations being hit.
type EntityDamage struct {
	Cancellable
	Entity EntityKind
	Damage float64
}

// BlockBreak is a player breaking a block by hand.
type BlockBreak struct {
	Cancellable
	Player *roster.Player
	Block  geom.Vector
	Kind   item.Kind
}

// BlockPlace is a player placing a block by hand.
type BlockPlace struct {
	Cancellable
	Player *roster.Player
	Block  geom.Vector
	Kind   item.Kind
}
