package bridge

import (
	"time"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/core"
)

// Verbosity selects which classes of self-report reach the
// diagnostic sink. The zero value is the default: errors only.
type Verbosity int8

const (
	// ErrorsOnly passes fault reports and nothing else.
	ErrorsOnly Verbosity = iota

	// DebugReports additionally passes internal state transitions.
	DebugReports

	// TraceReports additionally passes per-event activity.
	TraceReports
)

// level maps the verbosity onto the reporter threshold. Out-of-range
// values fall back to errors only.
func (v Verbosity) level() core.Level {
	switch v {
	case DebugReports:
		return core.DebugLevel
	case TraceReports:
		return core.TraceLevel
	default:
		return core.ErrorLevel
	}
}

// Options configure a Coordinator.
//
// # Invalid options are coerced
type Options struct {
	// Resolver locates the backend entry point through a context.
	// The default is backend.CapabilityResolver.
	Resolver backend.Resolver

	// Source yields the execution context of the calling goroutine.
	// The default is backend.Current.
	Source backend.Source

	// SampleInterval is K: the reachability probe runs once every K
	// log calls, trading up to K-1 calls of detection latency for a
	// cheaper per-call cost. The default is 5.
	SampleInterval int

	// Diagnostics is the verbosity of the self-reporting sink. The
	// zero value reports faults only; raise it to DebugReports or
	// TraceReports for internal state transitions.
	Diagnostics Verbosity

	// WatchMaxDelay caps the exponential backoff of Watch. The
	// default is 1s.
	WatchMaxDelay time.Duration
}

const (
	defaultSampleInterval = 5
	defaultWatchMaxDelay  = time.Second
)

// DefaultOptions returns *Options with all default values.
func DefaultOptions() *Options {
	return &Options{
		Resolver:       backend.CapabilityResolver{},
		Source:         backend.Current,
		SampleInterval: defaultSampleInterval,
		Diagnostics:    ErrorsOnly,
		WatchMaxDelay:  defaultWatchMaxDelay,
	}
}

// resolve ensures that all options have valid values.
func (o *Options) resolve() {
	if o.Resolver == nil {
		o.Resolver = backend.CapabilityResolver{}
	}
	if o.Source == nil {
		o.Source = backend.Current
	}

	// must be positive; 1 means probe on every call
	if o.SampleInterval < 1 {
		o.SampleInterval = defaultSampleInterval
	}

	if o.WatchMaxDelay <= 0 {
		o.WatchMaxDelay = defaultWatchMaxDelay
	}
}
