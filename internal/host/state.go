package host

import (
	"time"

	"github.com/sauerbraten/arbiter/pkg/maprot"
)

type State struct {
	Current maprot.Entry
	// SetManually is true when an operator picked the current match instead
	// of the rotation.
	SetManually bool
	UpSince     time.Time
	Matches     int
}
