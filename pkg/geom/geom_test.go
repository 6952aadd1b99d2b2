package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock(t *testing.T) {
	for _, tc := range []struct {
		in, want Vector
	}{
		{Vector{1.5, 64, 2.9}, Vector{1, 64, 2}},
		{Vector{-0.5, 63.2, -10}, Vector{-1, 63, -10}},
		{Vector{}, Vector{}},
	} {
		assert.Equal(t, tc.want, tc.in.Block(), "%v", tc.in)
	}
}

func TestCentered(t *testing.T) {
	l := Location{World: "keep", X: -3.2, Y: 64.7, Z: 10.9, Yaw: 90}
	c := l.Centered()
	assert.Equal(t, Location{World: "keep", X: -3.5, Y: 64.7, Z: 10.5, Yaw: 90}, c)
	assert.Equal(t, Vector{X: -3.5, Y: 64.7, Z: 10.5}, c.Vector())
	assert.Equal(t, Vector{X: 1, Z: -1}, Vector{X: 1}.Add(Vector{Z: -1}))
}
