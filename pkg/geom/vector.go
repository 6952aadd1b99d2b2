package geom

import "math"

type Vector struct {
	X, Y, Z float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Block returns the vector snapped to the corner of the block it lies in.
func (v Vector) Block() Vector {
	return Vector{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
}
