package arena

import (
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/event"
)

// Rules enforces an arena's environment policy on world events. Events are
// expected as pointers; the rules cancel or filter them in place.
type Rules struct {
	attrs         Attributes
	disabledDrops map[item.Kind]struct{}
}

func NewRules(attrs Attributes, disabledDrops map[item.Kind]struct{}) *Rules {
	return &Rules{
		attrs:         attrs,
		disabledDrops: disabledDrops,
	}
}

func (r *Rules) HandleEvent(ev event.Event) {
	switch e := ev.(type) {
	case *event.Explosion:
		r.Explosion(e)
	case *event.Death:
		r.Death(e)
	case *event.BlockSpread:
		r.BlockSpread(e)
	case *event.BlockIgnite:
		r.BlockIgnite(e)
	case *event.BlockBurn:
		r.BlockBurn(e)
	case *event.HangingBreak:
		r.HangingBreak(e)
	case *event.EntityDamage:
		r.EntityDamage(e)
	case *event.BlockBreak:
		r.BlockBreak(e)
	case *event.BlockPlace:
		r.BlockPlace(e)
	}
}

// Explosion keeps the terrain intact only when neither breaking nor
// exploding blocks is allowed.
func (r *Rules) Explosion(e *event.Explosion) {
	if !r.attrs.Bool(BlockBreak) && !r.attrs.Bool(BlockExplode) {
		e.Blocks = nil
	}
}

// Death turns disabled drops into air and leaves the rest alone.
func (r *Rules) Death(e *event.Death) {
	for i := range e.Drops {
		if r.DropDisabled(e.Drops[i].Kind) {
			e.Drops[i].Kind = item.Air
		}
	}
}

func (r *Rules) DropDisabled(k item.Kind) bool {
	_, ok := r.disabledDrops[k]
	return ok
}

func (r *Rules) BlockSpread(e *event.BlockSpread) {
	if e.Source == item.Fire && !r.attrs.Bool(FireSpread) {
		e.Cancel()
	}
}

func (r *Rules) BlockIgnite(e *event.BlockIgnite) {
	if e.Cause == event.IgniteSpread && !r.attrs.Bool(FireSpread) {
		e.Cancel()
	}
}

func (r *Rules) BlockBurn(e *event.BlockBurn) {
	if !r.attrs.Bool(FireSpread) {
		e.Cancel()
	}
}

func (r *Rules) HangingBreak(e *event.HangingBreak) {
	if !r.attrs.Bool(BlockBreak) {
		e.Cancel()
	}
}

func (r *Rules) EntityDamage(e *event.EntityDamage) {
	if !r.attrs.Bool(BlockBreak) && e.Entity.Hanging() {
		e.Cancel()
	}
}

func (r *Rules) BlockBreak(e *event.BlockBreak) {
	if !r.attrs.Bool(BlockBreak) {
		e.Cancel()
	}
}

func (r *Rules) BlockPlace(e *event.BlockPlace) {
	if !r.attrs.Bool(BlockPlace) {
		e.Cancel()
	}
}
