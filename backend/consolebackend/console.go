// Package consolebackend is a minimal line-oriented latelog backend
// for hosts that have no richer logging system to migrate to. One
// line per event:
//
//	2006-01-02T15:04:05.000Z INFO  name message caller=x.go:7 error=...
//
// It exists mainly so the activation machinery has somewhere real to
// land in small programs and in tests; production hosts are expected
// to expose zapbackend or fluentbackend instead.
package consolebackend

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/core"
)

// Backend writes events as single lines to one writer. A single
// mutex serializes formatting and writing; the handler-owned buffer
// is reused across writes.
type Backend struct {
	mu  sync.Mutex
	w   io.Writer
	buf bytes.Buffer
}

// New returns a Backend writing to w, or to os.Stdout when w is nil.
func New(w io.Writer) *Backend {
	if w == nil {
		w = os.Stdout
	}
	return &Backend{w: w}
}

// Logger implements backend.Backend.
func (b *Backend) Logger(name string) backend.Delegate {
	return &delegate{b: b, name: name}
}

func (b *Backend) write(t time.Time, level core.Level, name, callerTag, msg string, err error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf.Reset()
	b.buf.WriteString(t.UTC().Format("2006-01-02T15:04:05.000Z"))
	b.buf.WriteByte(' ')
	b.buf.WriteString(level.String())
	b.buf.WriteByte(' ')
	b.buf.WriteString(name)
	b.buf.WriteByte(' ')
	b.buf.WriteString(msg)
	if callerTag != "" {
		b.buf.WriteString(" caller=")
		b.buf.WriteString(callerTag)
	}
	if err != nil {
		b.buf.WriteString(" error=")
		b.buf.WriteString(err.Error())
	}
	b.buf.WriteByte('\n')

	_, werr := b.w.Write(b.buf.Bytes())
	return werr
}

type delegate struct {
	b    *Backend
	name string
}

var _ backend.LocationDelegate = (*delegate)(nil)
var _ backend.Recorder = (*delegate)(nil)

// Enabled always reports true; the console backend has no level
// threshold of its own.
func (d *delegate) Enabled(core.Level) bool { return true }

func (d *delegate) Log(level core.Level, msg string, err error) {
	d.b.write(time.Now(), level, d.name, "", msg, err)
}

func (d *delegate) LogAt(callerTag string, level core.Level, msg string, err error) {
	d.b.write(time.Now(), level, d.name, callerTag, msg, err)
}

func (d *delegate) Record(ev core.Event) error {
	return d.b.write(ev.Time(), ev.Level, ev.LoggerName, ev.CallerTag, ev.Message, ev.Err)
}
