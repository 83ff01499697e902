package fluentbackend

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/mbertrand/latelog/backend"
	"github.com/mbertrand/latelog/core"
)

// decodeMessage reads back one forward-mode message.
func decodeMessage(t *testing.T, dec *msgpack.Decoder) (tag string, when time.Time, record map[string]string) {
	t.Helper()

	n, err := dec.DecodeArrayLen()
	if err != nil {
		t.Fatalf("failed to decode outer array: %v", err)
	}
	if n != 3 {
		t.Fatalf("outer array length = %d, want 3", n)
	}

	tag, err = dec.DecodeString()
	if err != nil {
		t.Fatalf("failed to decode tag: %v", err)
	}

	var et eventTime
	if err := et.DecodeMsgpack(dec); err != nil {
		t.Fatalf("failed to decode EventTime: %v", err)
	}
	when = time.Time(et)

	fields, err := dec.DecodeMapLen()
	if err != nil {
		t.Fatalf("failed to decode record map: %v", err)
	}
	record = make(map[string]string, fields)
	for i := 0; i < fields; i++ {
		k, err := dec.DecodeString()
		if err != nil {
			t.Fatalf("failed to decode record key: %v", err)
		}
		v, err := dec.DecodeString()
		if err != nil {
			t.Fatalf("failed to decode record value: %v", err)
		}
		record[k] = v
	}
	return tag, when, record
}

func TestDelegate_RecordPreservesEvent(t *testing.T) {
	var buf bytes.Buffer
	bk := New(&buf, "latelog")

	stamp := time.Date(2025, 6, 1, 12, 0, 3, 250_000_000, time.UTC)
	ev := core.Event{
		LoggerName: "startup",
		CallerTag:  "boot.go:42",
		Level:      core.ErrorLevel,
		Message:    "backend gone",
		Err:        errors.New("nope"),
		TimeMillis: stamp.UnixMilli(),
	}

	rec, ok := bk.Logger("startup").(backend.Recorder)
	if !ok {
		t.Fatal("fluent delegate does not implement Recorder")
	}
	if err := rec.Record(ev); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	tag, when, record := decodeMessage(t, msgpack.NewDecoder(&buf))
	if tag != "latelog.startup" {
		t.Errorf("tag = %q, want latelog.startup", tag)
	}
	if !when.Equal(stamp) {
		t.Errorf("time = %v, want original capture time %v", when, stamp)
	}
	if record["level"] != "ERROR" {
		t.Errorf("level = %q, want ERROR", record["level"])
	}
	if record["message"] != "backend gone" {
		t.Errorf("message = %q", record["message"])
	}
	if record["caller"] != "boot.go:42" {
		t.Errorf("caller = %q, want boot.go:42", record["caller"])
	}
	if record["error"] != "nope" {
		t.Errorf("error = %q, want nope", record["error"])
	}
}

func TestDelegate_LogAtCarriesCaller(t *testing.T) {
	var buf bytes.Buffer
	bk := New(&buf, "")

	d, ok := bk.Logger("x").(backend.LocationDelegate)
	if !ok {
		t.Fatal("fluent delegate does not implement LocationDelegate")
	}
	d.LogAt("web.go:31", core.WarnLevel, "slow", nil)

	_, _, record := decodeMessage(t, msgpack.NewDecoder(&buf))
	if record["caller"] != "web.go:31" {
		t.Errorf("caller = %q, want web.go:31", record["caller"])
	}
}

func TestDelegate_LogOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	bk := New(&buf, "")

	bk.Logger("x").Log(core.InfoLevel, "hello", nil)

	tag, _, record := decodeMessage(t, msgpack.NewDecoder(&buf))
	if tag != "x" {
		t.Errorf("tag = %q, want bare logger name with empty prefix", tag)
	}
	if len(record) != 2 {
		t.Errorf("record has %d fields, want level and message only: %v", len(record), record)
	}
}

func TestDelegate_SequentialMessagesDecode(t *testing.T) {
	var buf bytes.Buffer
	bk := New(&buf, "app")
	d := bk.Logger("x")

	d.Log(core.InfoLevel, "first", nil)
	d.Log(core.WarnLevel, "second", nil)

	dec := msgpack.NewDecoder(&buf)
	_, _, first := decodeMessage(t, dec)
	_, _, second := decodeMessage(t, dec)
	if first["message"] != "first" || second["message"] != "second" {
		t.Errorf("messages out of order: %v then %v", first, second)
	}
}
