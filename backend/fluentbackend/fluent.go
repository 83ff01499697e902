package fluentbackend

import (
	"io"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/core"
	"github.com/mbertrand/latelog/diag"
)

// Backend encodes events as Fluent forward-mode messages onto a
// single writer. Writes are serialized by an internal mutex, so one
// Backend may back any number of delegates.
type Backend struct {
	mu        sync.Mutex
	w         io.Writer
	enc       *msgpack.Encoder
	tagPrefix string
}

// New returns a Backend writing to w. When tagPrefix is not empty,
// every message tag becomes "tagPrefix.<logger name>".
func New(w io.Writer, tagPrefix string) *Backend {
	return &Backend{
		w:         w,
		enc:       msgpack.NewEncoder(w),
		tagPrefix: tagPrefix,
	}
}

// Logger implements backend.Backend.
func (b *Backend) Logger(name string) backend.Delegate {
	tag := name
	if b.tagPrefix != "" {
		tag = b.tagPrefix + "." + name
	}
	return &delegate{b: b, tag: tag}
}

// Sync implements backend.Syncer. It flushes the writer when it
// supports flushing; a bare net.Conn does not buffer, so there is
// usually nothing to do.
func (b *Backend) Sync() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if f, ok := b.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

type delegate struct {
	b   *Backend
	tag string
}

var _ backend.LocationDelegate = (*delegate)(nil)
var _ backend.Recorder = (*delegate)(nil)

// Enabled always reports true; forward-protocol consumers do their
// own level routing.
func (d *delegate) Enabled(core.Level) bool { return true }

func (d *delegate) Log(level core.Level, msg string, err error) {
	d.LogAt("", level, msg, err)
}

func (d *delegate) LogAt(callerTag string, level core.Level, msg string, err error) {
	if emitErr := d.emit(time.Now(), callerTag, level, msg, err); emitErr != nil {
		diag.Sink().Printf("fluentbackend: failed to emit message: %v", emitErr)
	}
}

func (d *delegate) Record(ev core.Event) error {
	return d.emit(ev.Time(), ev.CallerTag, ev.Level, ev.Message, ev.Err)
}

// emit writes one forward-mode message: [tag, EventTime, record].
func (d *delegate) emit(t time.Time, callerTag string, level core.Level, msg string, err error) error {
	nFields := 2
	if callerTag != "" {
		nFields++
	}
	if err != nil {
		nFields++
	}

	d.b.mu.Lock()
	defer d.b.mu.Unlock()

	enc := d.b.enc
	if e := enc.EncodeArrayLen(3); e != nil {
		return e
	}
	if e := enc.EncodeString(d.tag); e != nil {
		return e
	}
	et := eventTime(t)
	if e := enc.Encode(&et); e != nil {
		return e
	}
	if e := enc.EncodeMapLen(nFields); e != nil {
		return e
	}
	if e := encodePair(enc, "level", level.String()); e != nil {
		return e
	}
	if e := encodePair(enc, "message", msg); e != nil {
		return e
	}
	if callerTag != "" {
		if e := encodePair(enc, "caller", callerTag); e != nil {
			return e
		}
	}
	if err != nil {
		if e := encodePair(enc, "error", err.Error()); e != nil {
			return e
		}
	}
	return nil
}

func encodePair(enc *msgpack.Encoder, key, val string) error {
	if e := enc.EncodeString(key); e != nil {
		return e
	}
	return enc.EncodeString(val)
}
