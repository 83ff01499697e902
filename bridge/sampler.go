package bridge

import "github.com/mbertrand/latelog/backend"

// worthProbing reports whether an activation attempt through ctx has
// a chance of succeeding: the resolver can tell the entry point is
// reachable, or, lacking that insight, the context has changed from
// the boot one. Resolution inside Activate remains the authority.
func (c *Coordinator) worthProbing(ctx backend.Context) bool {
	if ctx == nil {
		return false
	}
	if p, ok := c.opts.Resolver.(backend.Prober); ok {
		return p.Reachable(ctx)
	}
	return ctx != c.boot
}

// MaybeActivate is the detection sampler, invoked once per buffered
// log call. It increments a monotonic counter and runs the
// reachability check only when the counter hits a multiple of
// SampleInterval, so detection lags by at most K-1 calls while the
// other calls pay one atomic increment.
//
// The check itself is a heuristic: the backend now looks reachable
// through the execution context the Source reports, whether because
// the resolver probes it directly or because a richer context has
// replaced the one captured at construction.
func (c *Coordinator) MaybeActivate() {
	if c.calls.Add(1)%uint64(c.opts.SampleInterval) != 0 {
		return
	}
	if c.activated.Load() {
		return
	}

	cur := c.opts.Source()
	if !c.worthProbing(cur) {
		return
	}

	c.rep.Debugf("sampler: backend may be reachable, attempting activation")
	c.Activate(cur)
}
