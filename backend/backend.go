package backend

import "github.com/mbertrand/latelog/core"

// Delegate is the write surface a facade logger binds to once the
// backend is reachable.
type Delegate interface {
	// Enabled reports whether the backend accepts events at level.
	Enabled(level core.Level) bool

	// Log writes one message stamped with the delivery time.
	Log(level core.Level, msg string, err error)
}

// LocationDelegate is implemented by delegates that can attribute a
// write to its originating call site.
type LocationDelegate interface {
	Delegate

	// LogAt is Log with a caller tag for source attribution.
	LogAt(callerTag string, level core.Level, msg string, err error)
}

// Recorder is the replay surface used when flushing buffered events.
// Record must honor the timestamp carried by the event rather than
// stamping the delivery time. A delegate that does not implement
// Recorder cannot receive buffered events; the flush drops them and
// accounts for the loss.
type Recorder interface {
	Record(ev core.Event) error
}

// Backend is the entry point of an actual logging system.
type Backend interface {
	// Logger returns the delegate for the given logger name.
	Logger(name string) Delegate
}

// Syncer is implemented by backends that can flush buffered output.
// The shutdown fallback syncs the backend after its terminal flush.
type Syncer interface {
	Sync() error
}
