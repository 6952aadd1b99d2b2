package roster

import (
	"errors"
	"sort"

	"github.com/sauerbraten/arbiter/pkg/definitions/color"
)

var ErrGroupExists = errors.New("roster: group already registered")

// Group is the host-side view of a team: the name tag color and the
// friendly-fire rules that clients apply to its members.
type Group struct {
	Name                     string
	Prefix                   color.ID
	AllowFriendlyFire        bool
	CanSeeFriendlyInvisibles bool

	members map[*Player]struct{}
}

func (g *Group) Add(p *Player)    { g.members[p] = struct{}{} }
func (g *Group) Remove(p *Player) { delete(g.members, p) }
func (g *Group) Size() int        { return len(g.members) }

func (g *Group) Has(p *Player) bool {
	_, ok := g.members[p]
	return ok
}

func (g *Group) Clear() {
	for p := range g.members {
		delete(g.members, p)
	}
}

func (g *Group) Members() []*Player {
	members := make([]*Player, 0, len(g.members))
	for p := range g.members {
		members = append(members, p)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

// Line is one entry of the sidebar a mode maintains, e.g. a team and its score.
type Line struct {
	Label string
	Value int
}

// Scoreboard holds the groups and sidebar shown to players during one match.
// A fresh scoreboard is created for every match.
type Scoreboard struct {
	Title  string
	groups map[string]*Group
	order  []string
	lines  []Line
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		groups: map[string]*Group{},
	}
}

func (s *Scoreboard) RegisterGroup(name string) (*Group, error) {
	if _, ok := s.groups[name]; ok {
		return nil, ErrGroupExists
	}
	g := &Group{
		Name:    name,
		members: map[*Player]struct{}{},
	}
	s.groups[name] = g
	s.order = append(s.order, name)
	return g, nil
}

func (s *Scoreboard) Group(name string) (*Group, bool) {
	g, ok := s.groups[name]
	return g, ok
}

// Groups returns the groups in registration order.
func (s *Scoreboard) Groups() []*Group {
	groups := make([]*Group, 0, len(s.order))
	for _, name := range s.order {
		groups = append(groups, s.groups[name])
	}
	return groups
}

// SetLine sets the value for label, adding the line if it is new.
func (s *Scoreboard) SetLine(label string, value int) {
	for i := range s.lines {
		if s.lines[i].Label == label {
			s.lines[i].Value = value
			return
		}
	}
	s.lines = append(s.lines, Line{Label: label, Value: value})
}

func (s *Scoreboard) Lines() []Line {
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *Scoreboard) ClearLines() { s.lines = s.lines[:0] }
