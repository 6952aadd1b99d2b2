package host

import (
	"time"

	"github.com/ivahaev/timer"
)

// pausableTimer runs a function once after a delay that can be paused.
// Each method reports whether it changed the timer's state.
type pausableTimer interface {
	Start() bool
	Pause() bool
	Stop() bool
}

type intermissionTimer struct {
	t *timer.Timer
}

func newIntermissionTimer(d time.Duration, fn func()) pausableTimer {
	return &intermissionTimer{t: timer.AfterFunc(d, fn)}
}

func (it *intermissionTimer) Start() bool { return it.t.Start() }
func (it *intermissionTimer) Pause() bool { return it.t.Pause() }
func (it *intermissionTimer) Stop() bool  { return it.t.Stop() }
