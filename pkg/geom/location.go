package geom

import "fmt"

// Location is a stored position in a named world, used for spawn points.
// It is resolved into a live position by the host's world provider.
type Location struct {
	World string  `json:"world" yaml:"world"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	Z     float64 `json:"z" yaml:"z"`
	Yaw   float32 `json:"yaw" yaml:"yaw"`
	Pitch float32 `json:"pitch" yaml:"pitch"`
}

func (l Location) Vector() Vector { return Vector{l.X, l.Y, l.Z} }

// Centered returns the location moved to the middle of its block, which is
// where players should be placed so they don't end up inside a wall.
func (l Location) Centered() Location {
	b := l.Vector().Block()
	l.X, l.Z = b.X+0.5, b.Z+0.5
	return l
}

func (l Location) String() string {
	return fmt.Sprintf("%s(%.1f, %.1f, %.1f)", l.World, l.X, l.Y, l.Z)
}
