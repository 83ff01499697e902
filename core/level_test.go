package core

import "testing"

func TestLevel_String(t *testing.T) {
	cases := map[Level]string{
		TraceLevel: "TRACE",
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO",
		WarnLevel:  "WARN",
		ErrorLevel: "ERROR",
		Level(42):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestLevel_Ordering(t *testing.T) {
	if !(TraceLevel < DebugLevel && DebugLevel < InfoLevel && InfoLevel < WarnLevel && WarnLevel < ErrorLevel) {
		t.Error("levels are not strictly ordered from TRACE to ERROR")
	}
}
