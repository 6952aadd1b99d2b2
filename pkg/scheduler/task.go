package scheduler

import (
	"time"

	"github.com/sauerbraten/arbiter/pkg/game"
	"github.com/sauerbraten/arbiter/pkg/pausableticker"
)

// task forwards ticks from its own goroutine to the loop. Its state is only
// touched on the loop, so a tick that was already queued when the task got
// cancelled or paused is dropped there.
type task struct {
	loop   *Loop
	fn     func()
	ticker *pausableticker.Ticker

	cancelled bool
	paused    bool

	quit chan struct{}
	done chan struct{}
}

var _ game.Task = &task{}

func newTask(l *Loop, period time.Duration, fn func()) *task {
	return &task{
		loop:   l,
		fn:     fn,
		ticker: pausableticker.New(period),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (t *task) forward(delay time.Duration) {
	defer close(t.done)

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-t.quit:
			timer.Stop()
			return
		}
	}
	if !t.loop.post(t.run, t.quit) {
		return
	}

	for {
		select {
		case <-t.ticker.C:
			if !t.loop.post(t.run, t.quit) {
				return
			}
		case <-t.quit:
			return
		}
	}
}

func (t *task) run() {
	if t.cancelled || t.paused {
		return
	}
	t.fn()
}

// Cancel stops the task and waits for its goroutine to exit. Once Cancel
// returns, fn is not called again.
func (t *task) Cancel() {
	if t.cancelled {
		return
	}
	t.cancelled = true
	close(t.quit)
	t.ticker.Stop()
	<-t.done
}

func (t *task) Pause() {
	if t.cancelled || t.paused {
		return
	}
	t.paused = true
	t.ticker.Pause()
}

func (t *task) Resume() {
	if t.cancelled || !t.paused {
		return
	}
	t.paused = false
	t.ticker.Resume()
}

func (t *task) Paused() bool { return t.paused }
