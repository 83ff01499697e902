// Package zapbackend adapts go.uber.org/zap as a latelog backend.
//
// Delegates write zapcore.Entry values straight into the underlying
// cores, which is what lets replayed events keep their original
// capture time and logger name instead of being re-stamped at
// delivery. Caller tags ride along as a "caller" field, and errors as
// a standard zap error field.
//
// zap has no TRACE level; TRACE maps to zap's DEBUG.
package zapbackend
