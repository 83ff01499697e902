package consolebackend

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/core"
)

func TestDelegate_LogLine(t *testing.T) {
	var buf bytes.Buffer
	bk := New(&buf)

	d, ok := bk.Logger("web").(backend.LocationDelegate)
	if !ok {
		t.Fatal("console delegate does not implement LocationDelegate")
	}
	d.LogAt("server.go:10", core.WarnLevel, "slow request", errors.New("timeout"))

	line := buf.String()
	for _, want := range []string{"WARN", "web", "slow request", "caller=server.go:10", "error=timeout"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in line %q", want, line)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("line is not newline terminated")
	}
}

func TestDelegate_RecordPreservesTimestamp(t *testing.T) {
	var buf bytes.Buffer
	bk := New(&buf)

	stamp := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	ev := core.Event{
		LoggerName: "x",
		Level:      core.InfoLevel,
		Message:    "early",
		TimeMillis: stamp.UnixMilli(),
	}

	rec, ok := bk.Logger("x").(backend.Recorder)
	if !ok {
		t.Fatal("console delegate does not implement Recorder")
	}
	if err := rec.Record(ev); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "2025-01-02T03:04:05.000Z") {
		t.Errorf("line %q does not start with the original capture time", buf.String())
	}
}

func TestDelegate_PlainLogHasNoCaller(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Logger("x").Log(core.InfoLevel, "hello", nil)

	if strings.Contains(buf.String(), "caller=") {
		t.Errorf("plain Log produced a caller tag: %q", buf.String())
	}
	if strings.Contains(buf.String(), "error=") {
		t.Errorf("nil error produced an error field: %q", buf.String())
	}
}
