package diag

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/mbertrand/latelog/core"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Sink()
	SetSink(log.New(&buf, "", 0))
	t.Cleanup(func() { SetSink(prev) })
	return &buf
}

func TestReporter_ErrorAlwaysPasses(t *testing.T) {
	buf := capture(t)
	NewReporter(core.ErrorLevel).Errorf("broken: %d", 7)
	if !strings.Contains(buf.String(), "ERROR: broken: 7") {
		t.Errorf("expected error report, got: %q", buf.String())
	}
}

func TestReporter_DebugGated(t *testing.T) {
	buf := capture(t)

	NewReporter(core.ErrorLevel).Debugf("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug report passed at ErrorLevel verbosity: %q", buf.String())
	}

	NewReporter(core.DebugLevel).Debugf("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected debug report at DebugLevel verbosity, got: %q", buf.String())
	}
}

func TestReporter_TraceGated(t *testing.T) {
	buf := capture(t)

	NewReporter(core.DebugLevel).Tracef("hidden")
	if buf.Len() != 0 {
		t.Errorf("trace report passed at DebugLevel verbosity: %q", buf.String())
	}

	NewReporter(core.TraceLevel).Tracef("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected trace report at TraceLevel verbosity, got: %q", buf.String())
	}
}
