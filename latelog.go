// Package latelog is a logging facade for code that starts running
// before its logging backend does. Loggers obtained from Get work
// immediately: while no backend is reachable every call is captured,
// timestamp and call site included, into a process-wide buffer. Once
// a backend becomes reachable the buffer is replayed into it in
// submission order with the original timestamps, every handle is
// rebound to its real delegate, and from then on calls go straight
// through without taking any lock.
//
// The transition is driven by the execution context. The host
// publishes a context exposing its backend via Install:
//
//	latelog.Install(backend.NewContext().
//	    Provide(backend.EntryPoint, zapbackend.New(zl)))
//
// A sampler piggybacked on the log calls notices the change within a
// few calls and migrates. Hosts that want bounded detection latency
// even when nothing is logging can additionally run
// Coordinator().Watch in a goroutine.
//
// Close is the shutdown fallback: it makes one terminal activation
// attempt so that a backend wired up late still receives the buffer,
// then syncs the backend. Call it from main:
//
//	defer latelog.Close()
//
// Migration happens at most once per coordinator. Events that are in
// the buffer when the process exits without a backend are dropped
// silently; everything dropped for any other reason is accounted for
// on the diagnostic sink (see the diag package).
package latelog

import (
	"sync"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/bridge"
)

var (
	defaultCoord *bridge.Coordinator
	coordMu      sync.RWMutex
)

func init() {
	defaultCoord = bridge.New(nil)
}

// Coordinator returns the process coordinator backing Get.
func Coordinator() *bridge.Coordinator {
	coordMu.RLock()
	defer coordMu.RUnlock()
	return defaultCoord
}

// Configure replaces the process coordinator. Call it before the
// first Get; handles already bound to the previous coordinator keep
// using it.
func Configure(opts *bridge.Options) *bridge.Coordinator {
	coordMu.Lock()
	defer coordMu.Unlock()
	defaultCoord = bridge.New(opts)
	return defaultCoord
}

// Install publishes ctx as the process execution context, signalling
// that the backend it exposes is ready. Convenience re-export of
// backend.Install.
func Install(ctx backend.Context) {
	backend.Install(ctx)
}

// Close flushes and shuts down the process coordinator.
func Close() error {
	return Coordinator().Close()
}
