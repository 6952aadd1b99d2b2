package arena_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/color"
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/event"
	"github.com/sauerbraten/arbiter/pkg/game/gametest"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// funcTemplate lets each test set up an arena inline.
type funcTemplate struct {
	attributes func(b *arena.Builder)
	spawns     func(b *arena.Builder)
	kits       int
}

func (f *funcTemplate) ReadyAttributes(b *arena.Builder) {
	if f.attributes != nil {
		f.attributes(b)
	}
}

func (f *funcTemplate) ReadySpawns(b *arena.Builder) {
	if f.spawns != nil {
		f.spawns(b)
	}
}

func (f *funcTemplate) ApplyInventory(*roster.Player) { f.kits++ }

func TestLoadDefaults(t *testing.T) {
	d := gametest.MustLoad(t, gametest.NewArena("dust", "red", "blue"), nil)

	assert.Equal(t, "dust", d.Name())
	assert.True(t, d.Bool(arena.AllDamage))
	assert.True(t, d.Bool(arena.BlockBreak))
	assert.True(t, d.Bool(arena.BlockPlace))
	assert.True(t, d.Bool(arena.BlockExplode))
	assert.True(t, d.Bool(arena.PearlDamage))
	assert.False(t, d.Bool(arena.FireSpread))
	assert.Equal(t, 900, d.MatchDuration())
	assert.Equal(t, 20, d.Int(arena.FFAKills))
	assert.Equal(t, 3, d.Int(arena.CaptureRequirement))
	assert.NoError(t, d.Validate(arena.FFAKills))
}

func TestLoadKeepsDeclarationOrder(t *testing.T) {
	names := []string{"zulu", "alpha", "mike", "bravo"}
	d := gametest.MustLoad(t, gametest.NewArena("dust", names...), nil)

	teams := d.Teams()
	require.Len(t, teams, len(names))
	for i, name := range names {
		assert.Equal(t, name, teams[i].Name)
	}
}

func TestLoadRejectsBadMatchDuration(t *testing.T) {
	tmpl := gametest.NewArena("dust", "red")
	tmpl.Attributes[arena.MatchDuration] = 0

	_, err := arena.Load(tmpl, nil)
	require.ErrorIs(t, err, arena.ErrAttributeType)
}

func TestBuilderSetup(t *testing.T) {
	creator := uuid.New()
	red := roster.NewTeam("red", color.Red)
	ghost := roster.NewTeam("ghost", color.Gray)
	spawn := geom.Location{World: "w", X: 1, Y: 2, Z: 3}

	tmpl := &funcTemplate{
		attributes: func(b *arena.Builder) {
			b.SetName("keep")
			b.SetCreators(creator)
			b.SetAllowBuild(false, true)
			b.SetMatchDuration(600)
			b.Set("flagCount", 2.0)
			b.Set("broken", "yes")
			b.SetDisabledDrops(item.IronSword)
			b.RegisterTeam(nil)
			b.RegisterTeam(red)
			b.RegisterTeam(roster.NewTeam("red", color.Blue))
			b.AddTeamSpawn(red, spawn) // too early
		},
		spawns: func(b *arena.Builder) {
			assert.Equal(t, 600, b.Int(arena.MatchDuration))
			assert.False(t, b.Bool(arena.BlockBreak))
			b.Set(arena.FireSpread, true) // too late
			b.RegisterTeam(ghost)         // too late
			b.AddTeamSpawn(red, spawn)
			b.AddTeamSpawn(ghost, spawn)
			b.AddTeamSpawn(nil, spawn)
			b.SetSpectatorSpawn(geom.Location{World: "spec"})
		},
	}

	d, err := arena.Load(tmpl, nil)
	require.NoError(t, err)

	assert.Equal(t, "keep", d.Name())
	assert.Equal(t, []uuid.UUID{creator}, d.Creators())
	assert.False(t, d.Bool(arena.BlockBreak))
	assert.True(t, d.Bool(arena.BlockPlace))
	assert.False(t, d.Bool(arena.FireSpread))
	assert.Equal(t, 600, d.MatchDuration())
	assert.Equal(t, 2, d.Int("flagCount"))
	assert.False(t, d.Attributes().Has("broken"))
	assert.Equal(t, []item.Kind{item.IronSword}, d.DisabledDrops())

	teams := d.Teams()
	require.Len(t, teams, 1)
	assert.Same(t, red, teams[0])
	assert.Equal(t, []geom.Location{spawn}, d.TeamSpawns("red"))
	assert.Empty(t, d.TeamSpawns("ghost"))
	assert.Equal(t, "spec", d.SpectatorSpawn().World)
	assert.NoError(t, d.Validate("flagCount"))
	assert.ErrorIs(t, d.Validate("lives"), arena.ErrMissingAttribute)
}

func TestValidateSpawns(t *testing.T) {
	noTeams := gametest.MustLoad(t, gametest.NewArena("empty"), nil)
	assert.ErrorIs(t, noTeams.Validate(), arena.ErrNoTeams)

	tmpl := gametest.NewArena("dust", "red", "blue")
	tmpl.SpawnsPerTeam = 0
	noSpawns := gametest.MustLoad(t, tmpl, nil)
	assert.ErrorIs(t, noSpawns.Validate(), arena.ErrNoSpawns)
}

func TestSpawnsIsShallowCopy(t *testing.T) {
	tmpl := gametest.NewArena("dust", "red", "blue")
	tmpl.SpawnsPerTeam = 2
	d := gametest.MustLoad(t, tmpl, nil)

	spawns := d.Spawns()
	delete(spawns, "red")
	assert.Len(t, d.TeamSpawns("red"), 2)
	assert.Len(t, spawns["blue"], 2)
}

func TestApplyLoadout(t *testing.T) {
	eq := gametest.NewEquipment()
	tmpl := gametest.NewArena("dust", "red")
	d := gametest.MustLoad(t, tmpl, eq)
	p := roster.NewPlayer("p")

	d.ApplyLoadout(p)

	assert.Equal(t, 1, eq.Cleared[p])
	assert.Equal(t, 1, tmpl.Kits[p])
	assert.Equal(t, 1, eq.Updated[p])
}

type postStartTemplate struct {
	funcTemplate
	started []*arena.Definition
}

func (t *postStartTemplate) PostStart(d *arena.Definition) { t.started = append(t.started, d) }

func TestPostStart(t *testing.T) {
	tmpl := &postStartTemplate{}
	d, err := arena.Load(tmpl, nil)
	require.NoError(t, err)

	d.PostStart()
	assert.Equal(t, []*arena.Definition{d}, tmpl.started)

	plain := gametest.MustLoad(t, gametest.NewArena("dust"), nil)
	assert.NotPanics(t, plain.PostStart)
}

func TestActivateRegistersRules(t *testing.T) {
	bus := event.NewBus()
	d := gametest.MustLoad(t, gametest.NewArena("dust", "red"), nil)

	d.Activate(bus)
	assert.True(t, d.Active())
	assert.True(t, bus.Registered(d.Rules()))

	d.Activate(bus)
	d.Deactivate()
	assert.False(t, d.Active())
	assert.False(t, bus.Registered(d.Rules()))
	assert.NotPanics(t, d.Deactivate)
}
