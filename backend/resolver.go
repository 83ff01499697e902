package backend

import (
	"errors"
	"fmt"
)

// EntryPoint is the well-known capability name under which a Context
// exposes its backend.
const EntryPoint = "latelog.backend"

// ErrUnavailable reports that the backend entry point is not
// reachable through the given context. This is the expected state
// during early startup, retryable, not a fault.
var ErrUnavailable = errors.New("backend unavailable")

// ErrMalformed reports an entry point that was found but has an
// unusable shape. Callers report it once and then treat it exactly
// like ErrUnavailable, so a partially initialized backend gets
// another chance on a later attempt.
var ErrMalformed = errors.New("malformed backend entry point")

// Resolver locates the backend entry point through a context.
type Resolver interface {
	// Resolve returns the backend reachable through ctx, or an error
	// wrapping ErrUnavailable or ErrMalformed. It must not panic;
	// activation runs inside the global critical section and a crash
	// there takes the whole host down.
	Resolve(ctx Context) (Backend, error)
}

// Prober is optionally implemented by resolvers that can cheaply
// report whether the entry point looks reachable. A heuristic used by
// the detection sampler; Resolve remains the authority.
type Prober interface {
	Reachable(ctx Context) bool
}

// CapabilityResolver is the default Resolver. It looks up the
// EntryPoint capability and accepts either a ready Backend or a
// func() Backend constructor.
type CapabilityResolver struct{}

// Reachable implements Prober.
func (CapabilityResolver) Reachable(ctx Context) bool {
	_, ok := ctx.Capability(EntryPoint)
	return ok
}

// Resolve implements Resolver.
func (CapabilityResolver) Resolve(ctx Context) (Backend, error) {
	v, ok := ctx.Capability(EntryPoint)
	if !ok {
		return nil, ErrUnavailable
	}
	switch b := v.(type) {
	case Backend:
		return b, nil
	case func() Backend:
		bk := b()
		if bk == nil {
			return nil, fmt.Errorf("%w: constructor returned nil", ErrMalformed)
		}
		return bk, nil
	default:
		return nil, fmt.Errorf("%w: unexpected entry point type %T", ErrMalformed, v)
	}
}
