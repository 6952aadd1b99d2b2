package maprot

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/sauerbraten/arbiter/pkg/definitions/gamemode"
)

var (
	ErrAlreadyQueued = errors.New("already queued")
	ErrNotInPool     = errors.New("not in the arena pool")
	ErrEmptyPool     = errors.New("arena pool is empty")
)

// Pools lists the arenas that can be played in each mode. In config files
// modes are written by name: {"ffa": ["pit"], "elimination": ["keep"]}.
type Pools map[gamemode.ID][]string

// Entry is a match the host can start: a mode and an arena to play it on.
type Entry struct {
	Mode  gamemode.ID
	Arena string
}

func (e Entry) String() string { return e.Arena + " (" + e.Mode.String() + ")" }

type Rotation struct {
	pools Pools
	queue []Entry
	rng   *rand.Rand
}

// NewRotation returns a rotation over pools. A nil rng is replaced by one
// seeded from the clock.
func NewRotation(pools Pools, rng *rand.Rand) *Rotation {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	r := &Rotation{
		pools: Pools{},
		rng:   rng,
	}
	for mode, pool := range pools {
		r.pools[mode] = append([]string(nil), pool...)
	}
	return r
}

// Modes returns the modes that have at least one arena, in ID order.
func (r *Rotation) Modes() []gamemode.ID {
	modes := make([]gamemode.ID, 0, len(r.pools))
	for mode, pool := range r.pools {
		if len(pool) > 0 {
			modes = append(modes, mode)
		}
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

func (r *Rotation) Pool(mode gamemode.ID) []string {
	return append([]string(nil), r.pools[mode]...)
}

func (r *Rotation) Queued() []Entry {
	q := make([]Entry, len(r.queue))
	copy(q, r.queue)
	return q
}

func (r *Rotation) ClearQueue() { r.queue = r.queue[:0] }

// Next returns the match to play after current: the first queued entry if
// there is one, otherwise the arena after current.Arena in the pool of
// current.Mode, or a random arena from that pool if current.Arena is not
// in it.
func (r *Rotation) Next(current Entry) (Entry, error) {
	if len(r.queue) > 0 {
		next := r.queue[0]
		r.queue = r.queue[1:]
		return next, nil
	}

	pool := r.pools[current.Mode]
	if len(pool) == 0 {
		return Entry{}, fmt.Errorf("%s: %w", current.Mode, ErrEmptyPool)
	}

	for i, a := range pool {
		if a == current.Arena {
			return Entry{Mode: current.Mode, Arena: pool[(i+1)%len(pool)]}, nil
		}
	}

	// current arena wasn't found in the pool, pick a random one
	return Entry{Mode: current.Mode, Arena: pool[r.rng.Intn(len(pool))]}, nil
}

func (r *Rotation) InPool(mode gamemode.ID, arena string) bool {
	for _, a := range r.pools[mode] {
		if a == arena {
			return true
		}
	}
	return false
}

func (r *Rotation) inQueue(e Entry) bool {
	for _, q := range r.queue {
		if q == e {
			return true
		}
	}
	return false
}

// Queue appends e to the queue of matches to play next.
func (r *Rotation) Queue(e Entry) error {
	if r.inQueue(e) {
		return fmt.Errorf("%s is %w", e, ErrAlreadyQueued)
	}
	if !r.InPool(e.Mode, e.Arena) {
		return fmt.Errorf("%s is %w for %s", e.Arena, ErrNotInPool, e.Mode)
	}
	r.queue = append(r.queue, e)
	return nil
}

// Remove drops arena from every pool and from the queue, e.g. because its
// file was deleted.
func (r *Rotation) Remove(arena string) {
	for mode, pool := range r.pools {
		kept := pool[:0]
		for _, a := range pool {
			if a != arena {
				kept = append(kept, a)
			}
		}
		r.pools[mode] = kept
	}
	kept := r.queue[:0]
	for _, e := range r.queue {
		if e.Arena != arena {
			kept = append(kept, e)
		}
	}
	r.queue = kept
}
