package event

type Listener interface {
	HandleEvent(Event)
}

// Bus delivers events synchronously to every registered listener, in
// registration order. It is not safe for concurrent use: all registration
// and dispatch happens on the host loop.
type Bus struct {
	listeners []Listener
}

func NewBus() *Bus {
	return &Bus{}
}

// Register adds l; registering the same listener twice has no effect.
func (b *Bus) Register(l Listener) {
	for _, existing := range b.listeners {
		if existing == l {
			return
		}
	}
	b.listeners = append(b.listeners, l)
}

func (b *Bus) Unregister(l Listener) {
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *Bus) Registered(l Listener) bool {
	for _, existing := range b.listeners {
		if existing == l {
			return true
		}
	}
	return false
}

// Dispatch hands ev to the listeners registered at the time of the call.
// Listeners may unregister themselves while handling an event.
func (b *Bus) Dispatch(ev Event) {
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	for _, l := range listeners {
		l.HandleEvent(ev)
	}
}
