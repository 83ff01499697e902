package fluentbackend

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Fluent does not use the predefined msgpack Time format for
// sub-second precision; it defines its own extension type 0:
//
//	+-------+----+----+----+----+----+----+----+----+----+
//	|fixext8|type| seconds from epoch| nanosecond        |
//	+-------+----+----+----+----+----+----+----+----+----+
//	         0x00  32-bit integer BE   32-bit integer BE
//
// ref: https://github.com/fluent/fluentd/wiki/Forward-Protocol-Specification-v1#eventtime-ext-format
type eventTime time.Time

const (
	timeExtType = 0
	timeLen     = 8
)

var _ msgpack.CustomEncoder = (*eventTime)(nil)
var _ msgpack.CustomDecoder = (*eventTime)(nil)

// EncodeMsgpack serializes the time to the EventTime wire format.
func (t *eventTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeExtHeader(timeExtType, timeLen); err != nil {
		return fmt.Errorf("failed to encode EventTime header: %w", err)
	}

	// no timezone in the Fluent spec; seconds are constrained to
	// 32 bits (1970-2038)
	utc := time.Time(*t).UTC()
	w := enc.Writer()
	if err := binary.Write(w, binary.BigEndian, uint32(utc.Unix())); err != nil {
		return fmt.Errorf("failed to encode EventTime seconds: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(utc.Nanosecond())); err != nil {
		return fmt.Errorf("failed to encode EventTime nanoseconds: %w", err)
	}
	return nil
}

// DecodeMsgpack deserializes the EventTime wire format.
func (t *eventTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	buf := make([]byte, 10)
	if err := dec.ReadFull(buf); err != nil {
		return fmt.Errorf("failed to decode EventTime: %w", err)
	}
	if buf[0] != 0xD7 {
		return fmt.Errorf("failed to decode EventTime: byte[0] = %X, expected 0xD7 (fixext8)", buf[0])
	}
	if buf[1] != timeExtType {
		return fmt.Errorf("failed to decode EventTime: byte[1] = %X, expected 0x00 (ext type 0)", buf[1])
	}
	secs := int64(binary.BigEndian.Uint32(buf[2:6]))
	nsecs := int64(binary.BigEndian.Uint32(buf[6:]))
	*t = eventTime(time.Unix(secs, nsecs).In(time.UTC))
	return nil
}
