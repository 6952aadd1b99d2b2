package modes

import (
	"sort"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
	"github.com/sauerbraten/arbiter/pkg/game"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// FFA is free for all: every kill scores for the killer, and the first
// player to reach the arena's ffaKills wins. When time runs out, the player
// with the most kills wins.
type FFA struct {
	c *game.Controller

	kills  map[*roster.Player]int
	limit  int
	ended  bool
	winner string
}

// assert interface implementations at compile time
var (
	_ game.Mode              = &FFA{}
	_ game.AttributeRequirer = &FFA{}
	_ IDer                   = &FFA{}
	_ Resulter               = &FFA{}
)

func NewFFA(c *game.Controller) *FFA {
	return &FFA{
		c:     c,
		kills: map[*roster.Player]int{},
	}
}

func (*FFA) ID() gamemode.ID { return gamemode.FFA }

func (*FFA) RequiredAttributes() []string { return []string{arena.FFAKills} }

func (*FFA) ShortName() string          { return "FFA" }
func (*FFA) FullName() string           { return "Free For All" }
func (*FFA) OffenseDescription() string { return "Kill everyone else" }
func (*FFA) DefenseDescription() string { return "Don't get killed" }
func (*FFA) Article() string            { return "a" }

func (m *FFA) Initialize() {
	m.kills = map[*roster.Player]int{}
	m.limit = m.c.Arena().Int(arena.FFAKills)
	m.ended = false
	m.winner = ""
	m.UpdateScoreboard()
}

func (m *FFA) Reset() {
	m.kills = map[*roster.Player]int{}
	m.limit = 0
	m.ended = false
	m.winner = ""
}

func (m *FFA) Winner() string { return m.winner }

// Kills returns p's kill count in the current match.
func (m *FFA) Kills(p *roster.Player) int { return m.kills[p] }

func (m *FFA) OnJoin(p *roster.Player) {
	if _, ok := m.kills[p]; !ok {
		m.kills[p] = 0
	}
	m.UpdateScoreboard()
}

// kills are kept while a player spectates, in case they come back
func (m *FFA) OnLeave(*roster.Player) { m.UpdateScoreboard() }

func (m *FFA) OnKill(victim, killer *roster.Player) {
	if m.ended || killer == nil || killer == victim || killer.Team == nil {
		return
	}
	m.kills[killer]++
	killer.Team.Score++
	m.c.Broadcast(printer.Sprintf(msgKill, killer.Name, victim.Name, m.kills[killer], m.limit))
	m.UpdateScoreboard()

	if m.limit > 0 && m.kills[killer] >= m.limit {
		m.end(killer)
	}
}

func (m *FFA) OnForceEnd() bool {
	if m.ended || !m.c.IsActive() {
		return false
	}
	m.end(m.leader())
	return true
}

func (*FFA) Tick() {}

func (m *FFA) end(winner *roster.Player) {
	m.ended = true
	if winner == nil {
		m.c.Broadcast(printer.Sprintf(msgDraw))
	} else {
		m.winner = winner.Name
		m.c.Broadcast(printer.Sprintf(msgPlayerWon, winner.Name))
	}
	m.c.Finish()
}

// leader returns the player with the most kills, or nil if nobody scored or
// the top score is shared.
func (m *FFA) leader() *roster.Player {
	var (
		best   *roster.Player
		most   int
		shared bool
	)
	for p, k := range m.kills {
		switch {
		case k > most:
			best, most, shared = p, k, false
		case k == most && k > 0:
			shared = true
		}
	}
	if shared {
		return nil
	}
	return best
}

// UpdateScoreboard lists the playing participants by kills, most first.
func (m *FFA) UpdateScoreboard() {
	sb := m.c.Scoreboard()
	if sb == nil {
		return
	}
	players := make([]*roster.Player, 0, len(m.kills))
	for p := range m.kills {
		if p.Team != nil {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		if m.kills[players[i]] != m.kills[players[j]] {
			return m.kills[players[i]] > m.kills[players[j]]
		}
		return players[i].Name < players[j].Name
	})
	sb.ClearLines()
	for _, p := range players {
		sb.SetLine(p.Name, m.kills[p])
	}
}
