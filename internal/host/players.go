package host

import (
	"fmt"
	"strings"

	"github.com/sauerbraten/arbiter/pkg/roster"
)

func (h *Host) Player(name string) (*roster.Player, bool) {
	for _, p := range h.players {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// Connect adds a new player. They start out spectating.
func (h *Host) Connect(name string) (*roster.Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name required")
	}
	if _, ok := h.Player(name); ok {
		return nil, fmt.Errorf("%s is already connected", name)
	}
	p := roster.NewPlayer(name)
	h.players = append(h.players, p)
	if h.ctrl != nil {
		h.ctrl.Connect(p)
		h.Teleport(p, h.arena.SpectatorSpawn())
	}
	return p, nil
}

func (h *Host) Disconnect(p *roster.Player) {
	if h.ctrl != nil {
		h.ctrl.Disconnect(p)
	}
	for i, other := range h.players {
		if other == p {
			h.players = append(h.players[:i:i], h.players[i+1:]...)
			break
		}
	}
	delete(h.positions, p)
	delete(h.inventories, p)
}

// SetJoined records whether p wants to play and lets the current match act on it.
func (h *Host) SetJoined(p *roster.Player, joined bool) {
	p.Joined = joined
	if h.ctrl != nil {
		h.ctrl.HandleEntry(p)
	}
}
