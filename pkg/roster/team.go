package roster

import (
	"sort"

	"github.com/sauerbraten/arbiter/pkg/definitions/color"
)

type Team struct {
	Name    string
	Color   color.ID
	Score   int
	Players map[*Player]struct{}

	group *Group
}

func NewTeam(name string, c color.ID) *Team {
	return &Team{
		Name:    name,
		Color:   c,
		Players: map[*Player]struct{}{},
	}
}

// Clone returns a copy of the team for use in a single match: name and color
// are copied, membership, score and group link start out empty.
func (t *Team) Clone() *Team {
	return NewTeam(t.Name, t.Color)
}

// Add puts p into the team's membership and, if linked, its group.
// It does not change p.Team.
func (t *Team) Add(p *Player) {
	t.Players[p] = struct{}{}
	if t.group != nil {
		t.group.Add(p)
	}
}

func (t *Team) Remove(p *Player) {
	delete(t.Players, p)
	if t.group != nil {
		t.group.Remove(p)
	}
}

func (t *Team) Has(p *Player) bool {
	_, ok := t.Players[p]
	return ok
}

// Size is the live member count, taken from the linked group when there is one.
func (t *Team) Size() int {
	if t.group != nil {
		return t.group.Size()
	}
	return len(t.Players)
}

func (t *Team) Group() *Group { return t.group }

func (t *Team) SetGroup(g *Group) { t.group = g }

// Clear empties the membership, unlinks the group after removing every member
// from it, and resets the score.
func (t *Team) Clear() {
	for p := range t.Players {
		delete(t.Players, p)
	}
	if t.group != nil {
		t.group.Clear()
		t.group = nil
	}
	t.Score = 0
}

func (t *Team) ForEach(do func(*Player)) {
	for p := range t.Players {
		do(p)
	}
}

func (t *Team) String() string { return t.Name }

// sorts teams ascending by live size; use with sort.Stable to keep the
// declaration order among teams of equal size
type BySize []*Team

func (teams BySize) Len() int           { return len(teams) }
func (teams BySize) Swap(i, j int)      { teams[i], teams[j] = teams[j], teams[i] }
func (teams BySize) Less(i, j int) bool { return teams[i].Size() < teams[j].Size() }

// Smallest returns the team with the fewest members. Ties go to the team
// that comes first in teams. Returns nil for an empty slice.
func Smallest(teams []*Team) *Team {
	if len(teams) == 0 {
		return nil
	}
	sorted := make([]*Team, len(teams))
	copy(sorted, teams)
	sort.Stable(BySize(sorted))
	return sorted[0]
}

// Largest returns the team with the most members, with the same tie-break as Smallest.
func Largest(teams []*Team) *Team {
	if len(teams) == 0 {
		return nil
	}
	sorted := make([]*Team, len(teams))
	copy(sorted, teams)
	sort.Stable(sort.Reverse(BySize(sorted)))
	return sorted[0]
}
