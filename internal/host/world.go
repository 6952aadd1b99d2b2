package host

import (
	"github.com/sauerbraten/arbiter/pkg/definitions/item"
	"github.com/sauerbraten/arbiter/pkg/definitions/playerstate"
	"github.com/sauerbraten/arbiter/pkg/geom"
	"github.com/sauerbraten/arbiter/pkg/roster"
)

// Teleport, SetState and the inventory methods keep the in-process view of
// the world that operator commands act on.

func (h *Host) Teleport(p *roster.Player, to geom.Location) {
	h.positions[p] = to.Centered()
}

func (h *Host) SetState(p *roster.Player, state playerstate.ID) {
	p.State = state
}

func (h *Host) Position(p *roster.Player) geom.Location { return h.positions[p] }

func (h *Host) Give(p *roster.Player, s item.Stack) {
	h.inventories[p] = append(h.inventories[p], s)
}

func (h *Host) Clear(p *roster.Player) {
	delete(h.inventories, p)
}

// there is no client to resend the inventory to
func (h *Host) Update(*roster.Player) {}

func (h *Host) Inventory(p *roster.Player) []item.Stack {
	inv := make([]item.Stack, len(h.inventories[p]))
	copy(inv, h.inventories[p])
	return inv
}
