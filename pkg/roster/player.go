package roster

import (
	"github.com/google/uuid"

	"github.com/sauerbraten/arbiter/pkg/definitions/playerstate"
)

// Player is a participant known to the host.
type Player struct {
	ID   uuid.UUID
	Name string

	// Joined is the player's intent to take part in the match. It is set by
	// the host before entry handling runs and may be reset by the controller.
	Joined bool

	// Team is the roster the player currently plays for, nil while
	// spectating or before assignment.
	Team *Team

	State playerstate.ID
}

func NewPlayer(name string) *Player {
	return &Player{
		ID:    uuid.New(),
		Name:  name,
		State: playerstate.Spectator,
	}
}

func (p *Player) String() string { return p.Name }
