package bridge

import (
	"context"

	"github.com/bitdabbler/backoff"
)

// Watch polls for backend reachability on an exponential backoff
// schedule until activation succeeds or ctx is done. It is an
// alternative to per-call sampling for hosts that want bounded
// detection latency even when nothing is logging; running both is
// fine, since activation is idempotent.
//
// Cancellation is observed between sleeps, so it can lag by up to
// WatchMaxDelay. Returns nil once activated, or the context error.
func (c *Coordinator) Watch(ctx context.Context) error {
	b, err := backoff.New(
		backoff.WithInitialDelay(0),
		backoff.WithExponentialLimit(c.opts.WatchMaxDelay),
	)
	if err != nil {
		return err
	}

	for {
		if c.Activated() {
			return nil
		}
		if cur := c.opts.Source(); c.worthProbing(cur) {
			if c.Activate(cur) {
				return nil
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		b.Sleep()
	}
}
