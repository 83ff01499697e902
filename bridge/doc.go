// Package bridge implements the one-shot migration from buffering
// mode to direct delegation.
//
// A Coordinator owns all of the transition state: the FIFO of
// buffered events, the set of facade loggers awaiting a delegate, the
// retained backend, and the activated flag. Every mutation of that
// state happens inside the Coordinator's single mutex; the activated
// flag alone is additionally readable without the lock, and flipping
// it is the very last step of activation. That ordering is what makes
// the lock-free fast path sound: any goroutine that observes the flag
// as true is guaranteed the buffer flush and every facade rebinding
// already completed.
//
// Detection is sampled: once every SampleInterval log calls the
// coordinator checks whether the backend looks reachable, either
// because the resolver probes the current context directly or because
// that context differs from the one captured at construction, and
// attempts activation when it does. Construction runs the same probe
// once, so a backend reachable from the very first context is adopted
// immediately. A host can instead (or additionally) run Watch in a
// goroutine to poll on a backoff schedule, and must call Close at
// teardown to force a terminal best-effort activation for events that
// would otherwise never be delivered.
package bridge
