package latelog

import (
	"fmt"
	"sync/atomic"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/bridge"
	"github.com/mbertrand/latelog/core"
)

// binding is a delegate plus its optional location surface, cached
// together so the hot path loads both with a single atomic read.
type binding struct {
	delegate backend.Delegate
	location backend.LocationDelegate
}

// Logger is a named facade handle. Its identity is immutable; the
// binding pointer flips from nil to the backend delegate once, at
// activation, and never changes again. Safe for concurrent use.
type Logger struct {
	name  string
	coord *bridge.Coordinator
	bind  *atomic.Pointer[binding]
	err   error
}

func newLogger(name string, coord *bridge.Coordinator) *Logger {
	l := &Logger{
		name:  name,
		coord: coord,
		bind:  new(atomic.Pointer[binding]),
	}
	coord.Bind(l)
	return l
}

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// Rebind implements bridge.Pending. Called by the coordinator exactly
// once per handle.
func (l *Logger) Rebind(d backend.Delegate) {
	b := &binding{delegate: d}
	b.location, _ = d.(backend.LocationDelegate)
	l.bind.Store(b)
}

// WithError returns a handle that attaches err to every event it
// emits. The handle shares the receiver's name and binding, so it
// follows the same migration.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{name: l.name, coord: l.coord, bind: l.bind, err: err}
}

// Enabled reports whether an event at level would be delivered.
// Before activation everything is accepted, since the threshold that
// will eventually apply is not known yet.
func (l *Logger) Enabled(level core.Level) bool {
	if b := l.bind.Load(); b != nil {
		return b.delegate.Enabled(level)
	}
	return true
}

// dispatch sits exactly one frame below every public logging method,
// so the call site of interest is three frames up from Caller.
const callerSkip = 3

func (l *Logger) dispatch(level core.Level, msg string, err error) {
	b := l.bind.Load()
	if b == nil {
		// Not bound yet. Give the sampler its tick, then re-read: if
		// activation just completed, this call must not land in the
		// buffer behind it.
		l.coord.MaybeActivate()
		if b = l.bind.Load(); b == nil {
			l.coord.Append(core.NewEvent(l.name, core.Caller(callerSkip), level, msg, err))
			return
		}
	}

	if !b.delegate.Enabled(level) {
		return
	}
	if b.location != nil {
		b.location.LogAt(core.Caller(callerSkip), level, msg, err)
		return
	}
	b.delegate.Log(level, msg, err)
}

// Log emits a message at the given level.
func (l *Logger) Log(level core.Level, msg string) {
	l.dispatch(level, msg, l.err)
}

// Trace emits a trace message.
func (l *Logger) Trace(msg string) {
	l.dispatch(core.TraceLevel, msg, l.err)
}

// Debug emits a debug message.
func (l *Logger) Debug(msg string) {
	l.dispatch(core.DebugLevel, msg, l.err)
}

// Info emits an info message.
func (l *Logger) Info(msg string) {
	l.dispatch(core.InfoLevel, msg, l.err)
}

// Warn emits a warning message.
func (l *Logger) Warn(msg string) {
	l.dispatch(core.WarnLevel, msg, l.err)
}

// Error emits an error message.
func (l *Logger) Error(msg string) {
	l.dispatch(core.ErrorLevel, msg, l.err)
}

// Tracef emits a formatted trace message.
func (l *Logger) Tracef(format string, args ...any) {
	l.dispatch(core.TraceLevel, fmt.Sprintf(format, args...), l.err)
}

// Debugf emits a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.dispatch(core.DebugLevel, fmt.Sprintf(format, args...), l.err)
}

// Infof emits a formatted info message.
func (l *Logger) Infof(format string, args ...any) {
	l.dispatch(core.InfoLevel, fmt.Sprintf(format, args...), l.err)
}

// Warnf emits a formatted warning message.
func (l *Logger) Warnf(format string, args ...any) {
	l.dispatch(core.WarnLevel, fmt.Sprintf(format, args...), l.err)
}

// Errorf emits a formatted error message.
func (l *Logger) Errorf(format string, args ...any) {
	l.dispatch(core.ErrorLevel, fmt.Sprintf(format, args...), l.err)
}
