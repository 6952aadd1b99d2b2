package arena

import (
	"log"

	"github.com/google/uuid"

	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

type phase int

const (
	phaseAttributes phase = iota
	phaseSpawns
	phaseDone
)

// Builder collects an arena's data while its template sets it up. Calls made
// in the wrong phase are logged and ignored.
type Builder struct {
	phase phase

	name          string
	creators      []uuid.UUID
	attrs         Attributes
	teams         []*roster.Team
	teamsByName   map[string]*roster.Team
	spawns        map[string][]geom.Location
	spectator     geom.Location
	spectatorSet  bool
	disabledDrops map[item.Kind]struct{}
}

func newBuilder() *Builder {
	return &Builder{
		attrs:         DefaultAttributes(),
		teamsByName:   map[string]*roster.Team{},
		spawns:        map[string][]geom.Location{},
		disabledDrops: map[item.Kind]struct{}{},
	}
}

func (b *Builder) inPhase(p phase, what string) bool {
	if b.phase != p {
		log.Printf("arena %s: %s called outside of its setup phase, ignoring", b.name, what)
		return false
	}
	return true
}

func (b *Builder) SetName(name string) {
	if b.inPhase(phaseAttributes, "SetName") {
		b.name = name
	}
}

func (b *Builder) Name() string { return b.name }

func (b *Builder) SetCreators(creators ...uuid.UUID) {
	if b.inPhase(phaseAttributes, "SetCreators") {
		b.creators = append(b.creators[:0], creators...)
	}
}

// Set stores an attribute. Values of the wrong type are logged and dropped.
func (b *Builder) Set(key string, value interface{}) {
	if !b.inPhase(phaseAttributes, "Set") {
		return
	}
	if err := b.attrs.Set(key, value); err != nil {
		log.Printf("arena %s: %v", b.name, err)
	}
}

func (b *Builder) SetAllowBuild(blockBreak, blockPlace bool) {
	b.Set(BlockBreak, blockBreak)
	b.Set(BlockPlace, blockPlace)
}

func (b *Builder) SetMatchDuration(seconds int) {
	b.Set(MatchDuration, seconds)
}

// SetDisabledDrops replaces the list of item kinds that don't drop on death.
func (b *Builder) SetDisabledDrops(kinds ...item.Kind) {
	if !b.inPhase(phaseAttributes, "SetDisabledDrops") {
		return
	}
	b.disabledDrops = make(map[item.Kind]struct{}, len(kinds))
	for _, k := range kinds {
		b.disabledDrops[k] = struct{}{}
	}
}

func (b *Builder) Bool(key string) bool { return b.attrs.Bool(key) }

func (b *Builder) Int(key string) int { return b.attrs.Int(key) }

// RegisterTeam adds a team template, keyed by its name. A nil team is logged
// and dropped so that one bad entry doesn't fail the whole arena.
func (b *Builder) RegisterTeam(t *roster.Team) {
	if !b.inPhase(phaseAttributes, "RegisterTeam") {
		return
	}
	if t == nil {
		log.Printf("arena %s: failed to register team: team is nil", b.name)
		return
	}
	if _, ok := b.teamsByName[t.Name]; ok {
		log.Printf("arena %s: team %s registered twice, keeping the first", b.name, t.Name)
		return
	}
	b.teams = append(b.teams, t)
	b.teamsByName[t.Name] = t
}

func (b *Builder) Team(name string) (*roster.Team, bool) {
	t, ok := b.teamsByName[name]
	return t, ok
}

func (b *Builder) Teams() []*roster.Team {
	teams := make([]*roster.Team, len(b.teams))
	copy(teams, b.teams)
	return teams
}

// AddTeamSpawn appends a spawn point to a registered team's list.
func (b *Builder) AddTeamSpawn(t *roster.Team, spawn geom.Location) {
	if !b.inPhase(phaseSpawns, "AddTeamSpawn") {
		return
	}
	if t == nil {
		log.Printf("arena %s: spawn %s added for nil team, ignoring", b.name, spawn)
		return
	}
	if _, ok := b.teamsByName[t.Name]; !ok {
		log.Printf("arena %s: spawn %s added for unregistered team %s, ignoring", b.name, spawn, t.Name)
		return
	}
	b.spawns[t.Name] = append(b.spawns[t.Name], spawn)
}

func (b *Builder) SetSpectatorSpawn(spawn geom.Location) {
	if b.inPhase(phaseSpawns, "SetSpectatorSpawn") {
		b.spectator = spawn
		b.spectatorSet = true
	}
}
