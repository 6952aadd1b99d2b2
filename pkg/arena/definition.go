package arena

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/event"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

var (
	ErrNoTeams  = errors.New("arena has no teams")
	ErrNoSpawns = errors.New("team has no spawn points")
)

// Definition is a loaded arena. Its data does not change after Load; the
// only mutable state is whether a match is currently being played on it.
type Definition struct {
	name           string
	creators       []uuid.UUID
	attrs          Attributes
	teams          []*roster.Team
	spawns         map[string][]geom.Location
	spectatorSpawn geom.Location
	disabledDrops  map[item.Kind]struct{}

	template  Template
	equipment Equipment
	rules     *Rules

	active bool
	bus    *event.Bus
}

// Load builds a definition from t. Attributes are validated before spawns are
// set up; a missing or mistyped attribute fails the load. Teams without spawn
// points only get logged here: Validate reports them when a match is about
// to start on the arena.
func Load(t Template, eq Equipment) (*Definition, error) {
	b := newBuilder()

	t.ReadyAttributes(b)
	if err := b.attrs.Validate(); err != nil {
		return nil, fmt.Errorf("arena %s: %w", b.name, err)
	}

	b.phase = phaseSpawns
	t.ReadySpawns(b)
	b.phase = phaseDone

	if b.name == "" {
		log.Println("loaded arena without a name")
	}
	if !b.spectatorSet {
		log.Printf("arena %s: no spectator spawn set, using %s", b.name, b.spectator)
	}

	d := &Definition{
		name:           b.name,
		creators:       b.creators,
		attrs:          b.attrs.Copy(),
		teams:          b.teams,
		spawns:         b.spawns,
		spectatorSpawn: b.spectator,
		disabledDrops:  b.disabledDrops,
		template:       t,
		equipment:      eq,
	}
	d.rules = NewRules(d.attrs, d.disabledDrops)

	if err := d.checkSpawns(); err != nil {
		log.Printf("arena %s: %v", d.name, err)
	}

	return d, nil
}

func (d *Definition) Name() string { return d.name }

func (d *Definition) Creators() []uuid.UUID {
	creators := make([]uuid.UUID, len(d.creators))
	copy(creators, d.creators)
	return creators
}

// Attributes returns a copy of the attribute table.
func (d *Definition) Attributes() Attributes { return d.attrs.Copy() }

func (d *Definition) Bool(key string) bool { return d.attrs.Bool(key) }

func (d *Definition) Int(key string) int { return d.attrs.Int(key) }

func (d *Definition) MatchDuration() int { return d.attrs.Int(MatchDuration) }

// Teams returns the team templates in registration order. They must not be
// modified; matches work on clones.
func (d *Definition) Teams() []*roster.Team {
	teams := make([]*roster.Team, len(d.teams))
	copy(teams, d.teams)
	return teams
}

func (d *Definition) TeamSpawns(team string) []geom.Location {
	spawns := make([]geom.Location, len(d.spawns[team]))
	copy(spawns, d.spawns[team])
	return spawns
}

// Spawns returns a shallow copy of the spawn table: the map is new, the
// per-team slices are shared with the definition.
func (d *Definition) Spawns() map[string][]geom.Location {
	spawns := make(map[string][]geom.Location, len(d.spawns))
	for team, list := range d.spawns {
		spawns[team] = list
	}
	return spawns
}

func (d *Definition) SpectatorSpawn() geom.Location { return d.spectatorSpawn }

func (d *Definition) DisabledDrops() []item.Kind {
	kinds := make([]item.Kind, 0, len(d.disabledDrops))
	for k := range d.disabledDrops {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func (d *Definition) Rules() *Rules { return d.rules }

func (d *Definition) checkSpawns() error {
	if len(d.teams) == 0 {
		return ErrNoTeams
	}
	for _, t := range d.teams {
		if len(d.spawns[t.Name]) == 0 {
			return fmt.Errorf("%w: %s", ErrNoSpawns, t.Name)
		}
	}
	return nil
}

// Validate checks that a match can be started on the arena: every team has at
// least one spawn point and the attributes listed in required are present.
func (d *Definition) Validate(required ...string) error {
	if err := d.attrs.Validate(required...); err != nil {
		return fmt.Errorf("arena %s: %w", d.name, err)
	}
	if err := d.checkSpawns(); err != nil {
		return fmt.Errorf("arena %s: %w", d.name, err)
	}
	return nil
}

// Activate marks the arena as played and starts enforcing its rules on
// events dispatched through bus.
func (d *Definition) Activate(bus *event.Bus) {
	if d.active {
		return
	}
	d.active = true
	d.bus = bus
	if bus != nil {
		bus.Register(d.rules)
	}
}

func (d *Definition) Deactivate() {
	if !d.active {
		return
	}
	if d.bus != nil {
		d.bus.Unregister(d.rules)
	}
	d.bus = nil
	d.active = false
}

func (d *Definition) Active() bool { return d.active }

// ApplyLoadout clears p's inventory and gives them the arena's kit.
func (d *Definition) ApplyLoadout(p *roster.Player) {
	if d.equipment != nil {
		d.equipment.Clear(p)
	}
	d.template.ApplyInventory(p)
	if d.equipment != nil {
		d.equipment.Update(p)
	}
}

// PostStart runs the template's post-start hook, if it has one.
func (d *Definition) PostStart() {
	if ps, ok := d.template.(PostStarter); ok {
		ps.PostStart(d)
	}
}

func (d *Definition) String() string { return d.name }
