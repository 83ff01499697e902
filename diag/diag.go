package diag

import (
	"log"
	"os"
	"sync/atomic"

	"github.com/mbertrand/latelog/core"
)

var sink atomic.Value

func init() {
	sink.Store(log.New(os.Stderr, "[latelog] ", log.LstdFlags))
}

// Sink returns the logger used for self-reports, where output goes
// when something goes wrong in the logging stack itself.
func Sink() *log.Logger { return sink.Load().(*log.Logger) }

// SetSink replaces the self-report logger. Mainly useful in tests and
// for hosts that route diagnostics somewhere other than stderr.
func SetSink(l *log.Logger) {
	sink.Store(l)
}

// Reporter gates self-reports below a verbosity threshold. The zero
// value reports errors only.
type Reporter struct {
	verbosity core.Level
}

// NewReporter returns a Reporter passing reports at or above the
// given verbosity. ErrorLevel keeps only error reports; TraceLevel
// lets everything through.
func NewReporter(verbosity core.Level) Reporter {
	return Reporter{verbosity: verbosity}
}

// Errorf reports a fault in the logging stack. Never gated.
func (r Reporter) Errorf(format string, args ...any) {
	Sink().Printf("ERROR: "+format, args...)
}

// Debugf reports an internal state transition.
func (r Reporter) Debugf(format string, args ...any) {
	if r.verbosity <= core.DebugLevel {
		Sink().Printf(format, args...)
	}
}

// Tracef reports fine-grained internal activity, typically one line
// per buffered event.
func (r Reporter) Tracef(format string, args ...any) {
	if r.verbosity <= core.TraceLevel {
		Sink().Printf(format, args...)
	}
}
