package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/event"
	"github.com/sauerbraten/arbiter/pkg/geom"
)

func rulesWith(attrs map[string]interface{}, disabled ...item.Kind) *arena.Rules {
	a := arena.DefaultAttributes()
	for k, v := range attrs {
		a[k] = v
	}
	drops := map[item.Kind]struct{}{}
	for _, k := range disabled {
		drops[k] = struct{}{}
	}
	return arena.NewRules(a, drops)
}

func TestExplosionNeedsBothFlagsOff(t *testing.T) {
	cases := []struct {
		blockBreak, blockExplode bool
		keepsBlocks              bool
	}{
		{true, true, true},
		{true, false, true},
		{false, true, true},
		{false, false, false},
	}

	for _, c := range cases {
		r := rulesWith(map[string]interface{}{
			arena.BlockBreak:   c.blockBreak,
			arena.BlockExplode: c.blockExplode,
		})
		e := &event.Explosion{Blocks: []geom.Vector{{X: 1}, {X: 2}}}
		r.HandleEvent(e)

		if c.keepsBlocks {
			assert.Len(t, e.Blocks, 2, "blockBreak=%v blockExplode=%v", c.blockBreak, c.blockExplode)
		} else {
			assert.Empty(t, e.Blocks, "blockBreak=%v blockExplode=%v", c.blockBreak, c.blockExplode)
		}
	}
}

func TestDeathDropsDisabledKinds(t *testing.T) {
	r := rulesWith(nil, item.IronSword, item.Bow)
	e := &event.Death{Drops: []item.Stack{
		{Kind: item.IronSword, Amount: 1},
		{Kind: item.Arrow, Amount: 16},
		{Kind: item.Bow, Amount: 1},
		{Kind: item.GoldenApple, Amount: 2},
	}}

	r.HandleEvent(e)

	assert.Equal(t, []item.Stack{
		{Kind: item.Air, Amount: 1},
		{Kind: item.Arrow, Amount: 16},
		{Kind: item.Air, Amount: 1},
		{Kind: item.GoldenApple, Amount: 2},
	}, e.Drops)
	assert.True(t, r.DropDisabled(item.Bow))
	assert.False(t, r.DropDisabled(item.Arrow))
}

func TestFireRules(t *testing.T) {
	off := rulesWith(nil)
	on := rulesWith(map[string]interface{}{arena.FireSpread: true})

	spread := &event.BlockSpread{Source: item.Fire}
	off.HandleEvent(spread)
	assert.True(t, spread.Cancelled())

	grass := &event.BlockSpread{Source: item.Grass}
	off.HandleEvent(grass)
	assert.False(t, grass.Cancelled())

	spread = &event.BlockSpread{Source: item.Fire}
	on.HandleEvent(spread)
	assert.False(t, spread.Cancelled())

	ignite := &event.BlockIgnite{Cause: event.IgniteSpread}
	off.HandleEvent(ignite)
	assert.True(t, ignite.Cancelled())

	lit := &event.BlockIgnite{Cause: event.IgniteFlintAndSteel}
	off.HandleEvent(lit)
	assert.False(t, lit.Cancelled())

	ignite = &event.BlockIgnite{Cause: event.IgniteSpread}
	on.HandleEvent(ignite)
	assert.False(t, ignite.Cancelled())

	burn := &event.BlockBurn{}
	off.HandleEvent(burn)
	assert.True(t, burn.Cancelled())

	burn = &event.BlockBurn{}
	on.HandleEvent(burn)
	assert.False(t, burn.Cancelled())
}

func TestBreakRules(t *testing.T) {
	noBuild := rulesWith(map[string]interface{}{arena.BlockBreak: false, arena.BlockPlace: false})
	build := rulesWith(nil)

	for _, r := range []*arena.Rules{noBuild, build} {
		cancel := r == noBuild

		hb := &event.HangingBreak{Entity: event.EntityPainting, Cause: event.BreakPhysics}
		r.HandleEvent(hb)
		assert.Equal(t, cancel, hb.Cancelled())

		frame := &event.EntityDamage{Entity: event.EntityItemFrame, Damage: 1}
		r.HandleEvent(frame)
		assert.Equal(t, cancel, frame.Cancelled())

		bb := &event.BlockBreak{Kind: item.Stone}
		r.HandleEvent(bb)
		assert.Equal(t, cancel, bb.Cancelled())

		bp := &event.BlockPlace{Kind: item.Stone}
		r.HandleEvent(bp)
		assert.Equal(t, cancel, bp.Cancelled())
	}

	// players keep taking damage
	hit := &event.EntityDamage{Entity: event.EntityPlayer, Damage: 4}
	noBuild.HandleEvent(hit)
	assert.False(t, hit.Cancelled())
}

func TestPlaceIndependentOfBreak(t *testing.T) {
	r := rulesWith(map[string]interface{}{arena.BlockBreak: false})

	bp := &event.BlockPlace{Kind: item.Stone}
	r.HandleEvent(bp)
	assert.False(t, bp.Cancelled())

	bb := &event.BlockBreak{Kind: item.Stone}
	r.HandleEvent(bb)
	assert.True(t, bb.Cancelled())
}

func TestRulesThroughBus(t *testing.T) {
	bus := event.NewBus()
	r := rulesWith(map[string]interface{}{arena.BlockPlace: false})
	bus.Register(r)

	bp := &event.BlockPlace{Kind: item.TNT}
	bus.Dispatch(bp)
	assert.True(t, bp.Cancelled())

	bus.Unregister(r)
	bp = &event.BlockPlace{Kind: item.TNT}
	bus.Dispatch(bp)
	assert.False(t, bp.Cancelled())
}
