package core

import (
	"strconv"
	"strings"
	"time"
)

// Event is one log call captured while the backend is not reachable
// yet. Immutable once created.
//
// TimeMillis records when the call was made, not when the event is
// eventually delivered; replay into the backend must preserve it.
type Event struct {
	LoggerName string
	CallerTag  string
	Level      Level
	Message    string
	Err        error
	TimeMillis int64
}

// NewEvent captures a log call, stamping it with the current time.
func NewEvent(loggerName, callerTag string, level Level, msg string, err error) Event {
	return Event{
		LoggerName: loggerName,
		CallerTag:  callerTag,
		Level:      level,
		Message:    msg,
		Err:        err,
		TimeMillis: time.Now().UnixMilli(),
	}
}

// Time returns the capture time of the event.
func (e Event) Time() time.Time {
	return time.UnixMilli(e.TimeMillis)
}

// String builds a bare representation of the event, for low-level
// diagnostics only.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(e.TimeMillis, 10))
	b.WriteString(" [")
	b.WriteString(e.Level.String())
	b.WriteString("] ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}
