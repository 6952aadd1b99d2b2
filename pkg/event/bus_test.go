package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
	bus  *Bus
	once bool
}

func (r *recorder) HandleEvent(ev Event) {
	*r.log = append(*r.log, r.name)
	if r.once {
		r.bus.Unregister(r)
	}
}

func TestDispatchOrder(t *testing.T) {
	var log []string
	b := NewBus()
	first := &recorder{name: "first", log: &log}
	second := &recorder{name: "second", log: &log}

	b.Register(first)
	b.Register(second)
	b.Register(first)
	b.Dispatch(&BlockBurn{})

	assert.Equal(t, []string{"first", "second"}, log)
}

func TestUnregisterWhileDispatching(t *testing.T) {
	var log []string
	b := NewBus()
	once := &recorder{name: "once", log: &log, bus: b, once: true}
	always := &recorder{name: "always", log: &log}
	b.Register(once)
	b.Register(always)

	b.Dispatch(&BlockBurn{})
	b.Dispatch(&BlockBurn{})

	assert.Equal(t, []string{"once", "always", "always"}, log)
	assert.False(t, b.Registered(once))
	assert.True(t, b.Registered(always))
}

func TestCancellable(t *testing.T) {
	e := &BlockPlace{}
	assert.False(t, e.Cancelled())
	e.Cancel()
	assert.True(t, e.Cancelled())

	assert.True(t, EntityPainting.Hanging())
	assert.True(t, EntityItemFrame.Hanging())
	assert.False(t, EntityPlayer.Hanging())
}
