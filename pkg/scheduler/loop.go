// Package scheduler runs all match logic on one goroutine. Other goroutines
// (timers, the console, file watchers) hand work to the loop with Post.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sauerbraten/arbiter/pkg/game"
)

// Loop executes posted functions one at a time, in order.
type Loop struct {
	jobs    chan func()
	stopped chan struct{}
	once    sync.Once
}

var _ game.Scheduler = &Loop{}

func NewLoop(buffer int) *Loop {
	return &Loop{
		jobs:    make(chan func(), buffer),
		stopped: make(chan struct{}),
	}
}

// Run executes posted functions until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.stopped) })
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.jobs:
			fn()
		}
	}
}

// Post queues fn to run on the loop. It reports false if the loop has
// stopped. Post must not be called from the loop itself, since it blocks
// while the queue is full.
func (l *Loop) Post(fn func()) bool {
	return l.post(fn, nil)
}

func (l *Loop) post(fn func(), abort <-chan struct{}) bool {
	select {
	case l.jobs <- fn:
		return true
	case <-l.stopped:
		return false
	case <-abort:
		return false
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(fn func()) bool {
	done := make(chan struct{})
	if !l.Post(func() {
		defer close(done)
		fn()
	}) {
		return false
	}
	select {
	case <-done:
		return true
	case <-l.stopped:
		return false
	}
}

// Every runs fn on the loop after delay, then once every period. Every and
// the returned task's methods must be called on the loop.
func (l *Loop) Every(delay, period time.Duration, fn func()) game.Task {
	t := newTask(l, period, fn)
	go t.forward(delay)
	return t
}
