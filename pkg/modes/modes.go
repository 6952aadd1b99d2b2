// Package modes contains the game modes matches can be played in.
package modes

import (
	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
	"github.com/sauerbraten/arbiter/pkg/game"
)

// New returns a mode constructor for use with game.NewController, or nil if
// id is not a known mode.
func New(id gamemode.ID) func(*game.Controller) game.Mode {
	switch id {
	case gamemode.FFA:
		return func(c *game.Controller) game.Mode { return NewFFA(c) }
	case gamemode.Elimination:
		return func(c *game.Controller) game.Mode { return NewElimination(c) }
	default:
		return nil
	}
}

// IDer is implemented by all modes in this package.
type IDer interface {
	ID() gamemode.ID
}

// Resulter is implemented by modes that can name the winner of a finished
// match: a player or team name, or "" for a draw.
type Resulter interface {
	Winner() string
}
