// Package fluentbackend adapts a Fluent forward-protocol stream as a
// latelog backend.
//
// Every write becomes one forward-mode message, a msgpack array of
// [tag, time, record]. The logger name is appended to the configured
// tag prefix, and the event time is encoded in Fluent's fixext8
// EventTime format so replayed events keep sub-second capture times.
//
// The adapter owns no connection management: it writes to whatever
// io.Writer it is given, typically a net.Conn the host established
// once the backend side of the isolation boundary came up.
package fluentbackend
