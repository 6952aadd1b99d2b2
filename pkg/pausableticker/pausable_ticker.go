package pausableticker

import (
	"sync"
	"sync/atomic"
	"time"
)

// Ticker is a time.Ticker that can be paused. Ticks that fall into a pause
// are dropped.
type Ticker struct {
	C <-chan time.Time // The channel on which the ticks are delivered.

	pause  chan bool
	paused atomic.Bool
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
	ticker *time.Ticker
}

func New(d time.Duration) *Ticker {
	c := make(chan time.Time)

	t := &Ticker{
		C:      c,
		pause:  make(chan bool),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		ticker: time.NewTicker(d),
	}

	go t.run(c)

	return t
}

func (t *Ticker) run(c chan<- time.Time) {
	defer close(t.done)
	for {
		select {
		case now := <-t.ticker.C:
			select {
			case c <- now:
			case shouldPause := <-t.pause:
				if shouldPause && !t.waitForResume() {
					return
				}
			case <-t.stop:
				return
			}
		case shouldPause := <-t.pause:
			if shouldPause && !t.waitForResume() {
				return
			}
		case <-t.stop:
			return
		}
	}
}

// waitForResume blocks until the ticker is resumed (true) or stopped (false).
func (t *Ticker) waitForResume() bool {
	for {
		select {
		case shouldPause := <-t.pause:
			if !shouldPause {
				return true
			}
		case <-t.stop:
			return false
		}
	}
}

// Pause stops delivering ticks until Resume is called. When Pause returns,
// no more ticks will be delivered.
func (t *Ticker) Pause() {
	select {
	case t.pause <- true:
		t.paused.Store(true)
	case <-t.done:
	}
}

func (t *Ticker) Paused() bool {
	return t.paused.Load()
}

func (t *Ticker) Resume() {
	select {
	case t.pause <- false:
		t.paused.Store(false)
	case <-t.done:
	}
}

// Stop turns the ticker off and waits for its goroutine to exit. It is safe
// to call Stop more than once.
func (t *Ticker) Stop() {
	t.once.Do(func() {
		close(t.stop)
		t.ticker.Stop()
	})
	<-t.done
}
