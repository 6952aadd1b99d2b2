package game

import (
	"log"

	"github.com/sauerbraten/arbiter/pkg/definitions/playerstate"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// HandleEntry moves p into or out of the match according to p.Joined. It
// does nothing while no match is live.
func (c *Controller) HandleEntry(p *roster.Player) {
	if p == nil || !c.active {
		return
	}

	switch {
	case c.permaDeath && p.Joined:
		c.server.Notify(p, printer.Sprintf(msgTooLate))
		p.Joined = false

	case p.Joined:
		if p.Team != nil {
			return
		}
		team := roster.Smallest(c.order)
		if team == nil {
			log.Printf("%s can't join: arena %s has no teams", p, c.arena.Name())
			p.Joined = false
			return
		}
		c.carryOutTeam(p, team)
		c.mode.OnJoin(p)

	default:
		team := p.Team
		if team == nil {
			return
		}
		if !c.permaDeath {
			c.server.Notify(p, printer.Sprintf(msgLeft))
		}
		p.Team = nil
		c.world.Teleport(p, c.arena.SpectatorSpawn())
		p.State = playerstate.Spectator
		c.world.SetState(p, playerstate.Spectator)
		team.Remove(p)
		c.spectators.Add(p)
		c.mode.OnLeave(p)
	}
}

func (c *Controller) carryOutTeam(p *roster.Player, team *roster.Team) {
	c.server.Notify(p, printer.Sprintf(msgJoinedTeam, team.Name))

	if spawns := c.spawns[team.Name]; len(spawns) > 0 {
		c.world.Teleport(p, spawns[c.rng.Intn(len(spawns))])
	} else {
		log.Printf("arena %s: team %s has no spawn points, not moving %s", c.arena.Name(), team.Name, p)
	}
	p.State = playerstate.Playing
	c.world.SetState(p, playerstate.Playing)

	p.Team = team
	c.spectators.Remove(p)
	team.Add(p)
	c.arena.ApplyLoadout(p)
}
