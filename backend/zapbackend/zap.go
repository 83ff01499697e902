package zapbackend

import (
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/core"
)

// Backend hands out delegates writing to a set of zap cores.
type Backend struct {
	core  zapcore.Core
	cores []zapcore.Core
}

// New returns a Backend over the core of an existing zap logger.
func New(log *zap.Logger) *Backend {
	return NewCores(log.Core())
}

// NewCores returns a Backend that tees every delegate write across
// the given cores.
func NewCores(cores ...zapcore.Core) *Backend {
	return &Backend{
		core:  zapcore.NewTee(cores...),
		cores: cores,
	}
}

// Logger implements backend.Backend.
func (b *Backend) Logger(name string) backend.Delegate {
	return &delegate{name: name, core: b.core}
}

// Sync implements backend.Syncer, flushing every core.
func (b *Backend) Sync() error {
	var err error
	for _, c := range b.cores {
		err = multierr.Append(err, c.Sync())
	}
	return err
}

type delegate struct {
	name string
	core zapcore.Core
}

var _ backend.LocationDelegate = (*delegate)(nil)
var _ backend.Recorder = (*delegate)(nil)

func (d *delegate) Enabled(level core.Level) bool {
	return d.core.Enabled(toZapLevel(level))
}

func (d *delegate) Log(level core.Level, msg string, err error) {
	d.write(time.Now(), "", level, msg, err)
}

func (d *delegate) LogAt(callerTag string, level core.Level, msg string, err error) {
	d.write(time.Now(), callerTag, level, msg, err)
}

func (d *delegate) Record(ev core.Event) error {
	d.write(ev.Time(), ev.CallerTag, ev.Level, ev.Message, ev.Err)
	return nil
}

func (d *delegate) write(t time.Time, callerTag string, level core.Level, msg string, err error) {
	ent := zapcore.Entry{
		Level:      toZapLevel(level),
		Time:       t,
		LoggerName: d.name,
		Message:    msg,
	}
	ce := d.core.Check(ent, nil)
	if ce == nil {
		return
	}
	var fields []zapcore.Field
	if callerTag != "" {
		fields = append(fields, zap.String("caller", callerTag))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	ce.Write(fields...)
}

func toZapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
