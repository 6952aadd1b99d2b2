package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sauerbraten/arbiter/pkg/arena"
	"github.com/sauerbraten/arbiter/pkg/game/gametest"
)

func TestTickStartsImmediatelyEverySecond(t *testing.T) {
	h := newHarness(t, gametest.NewArena("dust", "red", "blue"))
	require.NoError(t, h.c.Activate(h.arena))

	tasks := h.sched.Tasks()
	require.Len(t, tasks, 1)
	assert.Zero(t, tasks[0].Delay)
	assert.Equal(t, "1s", tasks[0].Period.String())
}

func TestElapsedIncreasesByOnePerTick(t *testing.T) {
	h := newHarness(t, gametest.NewArena("dust", "red", "blue"))
	require.NoError(t, h.c.Activate(h.arena))

	for i := 1; i <= 50; i++ {
		h.sched.Tick(1)
		require.Equal(t, i, h.c.ElapsedSeconds())
	}
	// the mode's tick hook runs after the clock moved
	assert.Equal(t, 1, h.mode.TickElapsed[0])
	assert.Equal(t, 50, h.mode.Ticks)
}

func TestForceEndOnceWhenTimeIsUp(t *testing.T) {
	tmpl := gametest.NewArena("dust", "red", "blue")
	tmpl.Attributes[arena.MatchDuration] = 10
	h := newHarness(t, tmpl)
	require.NoError(t, h.c.Activate(h.arena))

	h.sched.Tick(9)
	require.Equal(t, 0, h.mode.ForceEnds)

	h.sched.Tick(1)
	require.Equal(t, 1, h.mode.ForceEnds)

	// the mode didn't end the match, the clock keeps running past the limit
	h.sched.Tick(20)
	require.Equal(t, 30, h.c.ElapsedSeconds())
	require.Equal(t, 1, h.mode.ForceEnds)
}

func TestForceEndFinishingStopsTheClock(t *testing.T) {
	tmpl := gametest.NewArena("dust", "red", "blue")
	tmpl.Attributes[arena.MatchDuration] = 10
	h := newHarness(t, tmpl)
	h.mode.FinishOnForceEnd = true
	require.NoError(t, h.c.Activate(h.arena))

	h.sched.Tick(15)
	assert.Equal(t, 10, h.c.ElapsedSeconds())
	assert.Equal(t, 1, h.mode.ForceEnds)
	assert.Equal(t, 1, h.server.Intermissions)
	assert.False(t, h.c.IsActive())

	// an operator ending the match again is harmless
	assert.False(t, h.mode.OnForceEnd())
	assert.Equal(t, 1, h.server.Intermissions)
}

func TestCountdownAnnouncements(t *testing.T) {
	h := newHarness(t, gametest.NewArena("dust", "red", "blue"))
	require.NoError(t, h.c.Activate(h.arena))
	require.Equal(t, 900, h.arena.MatchDuration())

	announcedAt := map[int]string{}
	for i := 1; i <= 900; i++ {
		before := len(h.server.Broadcasts)
		h.sched.Tick(1)
		switch len(h.server.Broadcasts) - before {
		case 0:
		case 1:
			announcedAt[900-i] = h.server.Broadcasts[before]
		default:
			t.Fatalf("more than one announcement at %d seconds left", 900-i)
		}
	}

	want := []int{30, 5, 4, 3, 2, 1}
	for m := 14; m >= 1; m-- {
		want = append(want, m*60)
	}
	require.Len(t, announcedAt, len(want))
	for _, remaining := range want {
		assert.Contains(t, announcedAt, remaining)
	}

	assert.Equal(t, "There are 14 minutes remaining!", announcedAt[840])
	assert.Equal(t, "There is 1 minute remaining!", announcedAt[60])
	assert.Equal(t, "There are 30 seconds remaining!", announcedAt[30])
	assert.Equal(t, "There are 5 seconds remaining!", announcedAt[5])
	assert.Equal(t, "There is 1 second remaining!", announcedAt[1])
}

func TestSetElapsedSeconds(t *testing.T) {
	h := newHarness(t, gametest.NewArena("dust", "red", "blue"))
	require.NoError(t, h.c.Activate(h.arena))

	h.c.SetElapsedSeconds(895)
	assert.Equal(t, 5, h.c.SecondsLeft())
	h.c.SetElapsedSeconds(-1)
	assert.Equal(t, 895, h.c.ElapsedSeconds())

	h.sched.Tick(5)
	assert.Equal(t, 1, h.mode.ForceEnds)
}

func TestPauseStopsTheClock(t *testing.T) {
	h := newHarness(t, gametest.NewArena("dust", "red", "blue"))
	require.NoError(t, h.c.Activate(h.arena))

	h.sched.Tick(3)
	h.c.Pause()
	require.True(t, h.c.Paused())
	h.sched.Tick(3)
	require.Equal(t, 3, h.c.ElapsedSeconds())

	h.c.Resume()
	h.sched.Tick(1)
	require.Equal(t, 4, h.c.ElapsedSeconds())
}

func TestNoTicksAfterDeactivate(t *testing.T) {
	h := newHarness(t, gametest.NewArena("dust", "red", "blue"))
	require.NoError(t, h.c.Activate(h.arena))
	h.sched.Tick(2)
	h.c.Deactivate()

	h.sched.Tick(5)
	assert.Equal(t, 0, h.c.ElapsedSeconds())
	assert.Equal(t, 2, h.mode.Ticks)
	assert.True(t, h.sched.Tasks()[0].Cancelled())
}
