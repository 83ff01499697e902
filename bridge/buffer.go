package bridge

import "github.com/mbertrand/latelog/core"

// eventBuffer is the append-only FIFO of not-yet-delivered events.
// Not safe for concurrent use on its own; the Coordinator serializes
// every access through its lock, so the global event order equals the
// lock-acquisition order of the appenders.
type eventBuffer struct {
	events []core.Event
}

func (b *eventBuffer) append(ev core.Event) {
	b.events = append(b.events, ev)
}

func (b *eventBuffer) len() int {
	return len(b.events)
}

// drain returns the buffered events in submission order and clears
// the buffer.
func (b *eventBuffer) drain() []core.Event {
	events := b.events
	b.events = nil
	return events
}
