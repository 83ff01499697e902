package bridge

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/core"
	"github.com/mbertrand/latelog/diag"
)

// Pending is a facade logger handle awaiting its backend delegate.
type Pending interface {
	// Name is the logger name, used to look up the delegate.
	Name() string

	// Rebind installs the backend delegate. The coordinator calls it
	// at most once, from inside its critical section.
	Rebind(d backend.Delegate)
}

// Coordinator owns the one-shot transition from buffering to direct
// delegation. The zero value is not usable; construct with New.
type Coordinator struct {
	opts *Options
	rep  diag.Reporter
	boot backend.Context

	// activated flips false to true exactly once and never back. It
	// is stored as the last step of activation, under mu, and read
	// lock-free as the fast-path gate.
	activated atomic.Bool

	// calls counts log calls for the detection sampler.
	calls atomic.Uint64

	mu      sync.Mutex
	buf     eventBuffer
	pending []Pending
	bk      backend.Backend
	faulted bool // a malformed entry point has been reported
	closed  bool
}

// New returns a Coordinator with the given options, capturing the
// boot execution context from the configured Source. A nil opts uses
// all defaults.
func New(opts *Options) *Coordinator {
	if opts == nil {
		opts = DefaultOptions()
	} else {
		opts.resolve()
	}
	c := &Coordinator{
		opts: opts,
		rep:  diag.NewReporter(opts.Diagnostics.level()),
		boot: opts.Source(),
	}
	// The backend may be reachable from the very first context, with
	// no richer one ever coming. Probe once here so such hosts
	// activate immediately instead of buffering until shutdown.
	if c.worthProbing(c.boot) {
		c.Activate(c.boot)
	}
	return c
}

// Activated reports whether the one-shot migration has completed.
// Lock-free; this is the steady-state fast-path gate.
func (c *Coordinator) Activated() bool {
	return c.activated.Load()
}

// Bind registers f for rebinding at activation, or binds it
// immediately when activation has already happened.
func (c *Coordinator) Bind(f Pending) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activated.Load() {
		f.Rebind(c.bk.Logger(f.Name()))
		return
	}
	c.rep.Tracef("registering pending logger [%s]", f.Name())
	c.pending = append(c.pending, f)
}

// Append buffers one event. If activation won a race and completed
// after the caller last checked, the event is delivered directly
// instead, so it can neither be lost nor duplicated.
func (c *Coordinator) Append(ev core.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.activated.Load() {
		c.deliver(ev)
		return
	}
	c.rep.Tracef("%s", ev)
	c.buf.append(ev)
}

// deliver writes one event straight to the backend, caller tag and
// all, honoring the delegate's level gate the same way the bound
// fast path does. Called under mu after activation only.
func (c *Coordinator) deliver(ev core.Event) {
	d := c.bk.Logger(ev.LoggerName)
	if !d.Enabled(ev.Level) {
		return
	}
	if law, ok := d.(backend.LocationDelegate); ok && ev.CallerTag != "" {
		law.LogAt(ev.CallerTag, ev.Level, ev.Message, ev.Err)
		return
	}
	d.Log(ev.Level, ev.Message, ev.Err)
}

// Activate performs the one-shot migration through ctx. Idempotent
// and safe under concurrent invocation: the entire body runs inside
// the single lock, and a double-checked flag guard makes every call
// after the first a no-op. Returns whether the coordinator is
// activated on return.
func (c *Coordinator) Activate(ctx backend.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activateLocked(ctx)
}

func (c *Coordinator) activateLocked(ctx backend.Context) bool {
	if c.activated.Load() {
		return true
	}

	bk, err := c.opts.Resolver.Resolve(ctx)
	if err != nil {
		if !errors.Is(err, backend.ErrUnavailable) && !c.faulted {
			// Malformed entry point: report once, then keep treating
			// it as unavailable so a later attempt can still succeed.
			c.faulted = true
			c.rep.Errorf("cannot resolve backend entry point: %v", err)
		}
		return false
	}

	c.bk = bk
	c.flushLocked()
	for _, f := range c.pending {
		f.Rebind(bk.Logger(f.Name()))
	}
	c.pending = nil

	// The flag flip must be last: lock-free readers treat a true flag
	// as proof that the flush and every rebinding are complete.
	c.activated.Store(true)
	c.rep.Debugf("activated")
	return true
}

// flushLocked replays buffered events into the backend in submission
// order, preserving capture timestamps. A logger name resolving to a
// delegate without a Record method drops the remaining contiguous run
// of events for that name, with a single diagnostic carrying the
// count; the flush then continues with the other names.
func (c *Coordinator) flushLocked() {
	events := c.buf.drain()
	if len(events) == 0 {
		return
	}
	c.rep.Debugf("flushing %d buffered events", len(events))

	for i := 0; i < len(events); {
		ev := events[i]
		rec, ok := c.bk.Logger(ev.LoggerName).(backend.Recorder)
		if !ok {
			run := 1
			for i+run < len(events) && events[i+run].LoggerName == ev.LoggerName {
				run++
			}
			c.rep.Errorf("unexpected delegate type for logger [%s]: discarding %d buffered events", ev.LoggerName, run)
			i += run
			continue
		}
		if err := rec.Record(ev); err != nil {
			c.rep.Errorf("failed to replay buffered event to logger [%s]: %v", ev.LoggerName, err)
		}
		i++
	}
}

// Close is the shutdown fallback. If activation never happened it
// runs one terminal best-effort attempt with the current context;
// events that still cannot be delivered stay undelivered, which is
// the accepted terminal state, not an error. On an activated backend
// it then syncs and closes whatever the backend supports. Idempotent.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if !c.activated.Load() {
		c.rep.Debugf("shutdown: forcing activation")
		if !c.activateLocked(c.opts.Source()) && c.buf.len() > 0 {
			c.rep.Debugf("shutdown: %d buffered events were never delivered", c.buf.len())
			return nil
		}
	}

	var errs []error
	if s, ok := c.bk.(backend.Syncer); ok {
		errs = append(errs, s.Sync())
	}
	if cl, ok := c.bk.(io.Closer); ok {
		errs = append(errs, cl.Close())
	}
	return multierr.Combine(errs...)
}
