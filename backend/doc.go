// Package backend defines the outbound contracts between the latelog
// facade and an actual logging system.
//
// A Backend is the entry point of such a system: a name-addressed
// lookup handing out Delegate write handles. Delegates that can
// attribute a write to its originating call site additionally
// implement LocationDelegate; delegates that can replay a buffered
// event with its original timestamp implement Recorder. The facade
// probes for both with interface assertions, once, at binding time.
//
// A Backend becomes reachable through a Context, an opaque capability
// table modelling the runtime isolation boundary: early in the
// process life the context exposes nothing, and at some point a
// richer context appears that exposes the backend entry point under
// the well-known EntryPoint name. A Resolver turns a context into a
// Backend, reporting ErrUnavailable for the expected not-there-yet
// case and ErrMalformed for an entry point of the wrong shape.
//
// Concrete adapters live in the subpackages zapbackend,
// fluentbackend, and consolebackend.
package backend
