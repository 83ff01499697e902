package backend

import "sync/atomic"

// Context models an execution context through which capabilities
// become reachable. Implementations must be comparable (pointers are
// fine): the detection sampler relies on identity comparison to
// notice that a richer context has replaced the one active at
// process start.
type Context interface {
	// Capability looks up a named capability, reporting whether the
	// context exposes it.
	Capability(name string) (any, bool)
}

// Source yields the execution context visible to the calling
// goroutine at this moment.
type Source func() Context

// StaticContext is a fixed capability table.
type StaticContext struct {
	caps map[string]any
}

// NewContext returns an empty StaticContext.
func NewContext() *StaticContext {
	return &StaticContext{caps: make(map[string]any)}
}

// Provide registers a capability under name and returns the receiver
// for chaining. Not safe for concurrent use with Capability; build
// the context fully before publishing it.
func (c *StaticContext) Provide(name string, capability any) *StaticContext {
	c.caps[name] = capability
	return c
}

// Capability implements Context.
func (c *StaticContext) Capability(name string) (any, bool) {
	v, ok := c.caps[name]
	return v, ok
}

// boot is the context in place at process start. It exposes nothing,
// which is the whole point of this module.
var boot = NewContext()

type holder struct {
	ctx Context
}

var current atomic.Pointer[holder]

func init() {
	current.Store(&holder{ctx: boot})
}

// Current returns the process execution context. This is the default
// Source: it returns the boot context until a richer one is
// installed.
func Current() Context {
	return current.Load().ctx
}

// Install publishes ctx as the process execution context. This is
// the activation signal: the detection sampler notices the change on
// one of its next ticks and attempts to migrate to the backend the
// context exposes.
func Install(ctx Context) {
	current.Store(&holder{ctx: ctx})
}
