package modes

import (
	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
	"github.com/sauerbraten/arbiter/pkg/game"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// JoinWindow is how many seconds players have to join an elimination match
// before the teams are locked.
const JoinWindow = 30

// Elimination is last team standing. During the join window dead players
// may rejoin; once the teams are locked a death is final, and the match ends
// as soon as only one team has players left.
type Elimination struct {
	c *game.Controller

	locked bool
	ended  bool
	winner string
}

// assert interface implementations at compile time
var (
	_ game.Mode = &Elimination{}
	_ IDer      = &Elimination{}
	_ Resulter  = &Elimination{}
)

func NewElimination(c *game.Controller) *Elimination {
	return &Elimination{c: c}
}

func (*Elimination) ID() gamemode.ID { return gamemode.Elimination }

func (*Elimination) ShortName() string          { return "ELIM" }
func (*Elimination) FullName() string           { return "Elimination" }
func (*Elimination) OffenseDescription() string { return "Eliminate the other teams" }
func (*Elimination) DefenseDescription() string { return "Be the last team standing" }
func (*Elimination) Article() string            { return "an" }

func (m *Elimination) Initialize() {
	m.locked = false
	m.ended = false
	m.winner = ""
	m.UpdateScoreboard()
}

func (m *Elimination) Reset() {
	m.locked = false
	m.ended = false
	m.winner = ""
}

func (m *Elimination) Winner() string { return m.winner }

func (m *Elimination) Locked() bool { return m.locked }

func (m *Elimination) OnJoin(*roster.Player) { m.UpdateScoreboard() }

func (m *Elimination) OnLeave(*roster.Player) {
	m.UpdateScoreboard()
	m.check()
}

// OnKill takes the victim out of their team. The controller's leave
// handling calls back into OnLeave, which checks for a winner.
func (m *Elimination) OnKill(victim, killer *roster.Player) {
	if m.ended || victim.Team == nil {
		return
	}
	if killer != nil && killer != victim && killer.Team != nil {
		killer.Team.Score++
	}
	if m.locked {
		m.c.Broadcast(printer.Sprintf(msgEliminated, victim.Name))
	}
	victim.Joined = false
	m.c.HandleEntry(victim)
}

func (m *Elimination) Tick() {
	if !m.locked && m.c.ElapsedSeconds() >= JoinWindow {
		m.lock()
	}
}

func (m *Elimination) lock() {
	m.locked = true
	m.c.SetPermaDeath(true)
	m.c.Broadcast(printer.Sprintf(msgLocked))
	m.check()
}

// check ends the match once at most one team has players left.
func (m *Elimination) check() {
	if !m.locked || m.ended {
		return
	}
	alive := m.alive()
	switch len(alive) {
	case 0:
		m.end(nil)
	case 1:
		m.end(alive[0])
	default:
		m.c.Broadcast(printer.Sprintf(msgTeamsLeft, len(alive)))
	}
}

func (m *Elimination) alive() []*roster.Team {
	var alive []*roster.Team
	for _, t := range m.c.Teams() {
		if t.Size() > 0 {
			alive = append(alive, t)
		}
	}
	return alive
}

// OnForceEnd lets the team with the most players left win. If several
// teams share the most, the match is a draw.
func (m *Elimination) OnForceEnd() bool {
	if m.ended || !m.c.IsActive() {
		return false
	}
	teams := m.c.Teams()
	winner := roster.Largest(teams)
	if winner != nil {
		for _, t := range teams {
			if t != winner && t.Size() == winner.Size() {
				winner = nil
				break
			}
		}
	}
	m.end(winner)
	return true
}

func (m *Elimination) end(winner *roster.Team) {
	m.ended = true
	if winner == nil {
		m.c.Broadcast(printer.Sprintf(msgDraw))
	} else {
		m.winner = winner.Name
		m.c.Broadcast(printer.Sprintf(msgTeamWon, winner.Name))
	}
	m.c.Finish()
}

// UpdateScoreboard shows how many players each team has left.
func (m *Elimination) UpdateScoreboard() {
	sb := m.c.Scoreboard()
	if sb == nil {
		return
	}
	sb.ClearLines()
	for _, t := range m.c.Teams() {
		sb.SetLine(t.Name, t.Size())
	}
}
