// Package core defines the shared leaf types of latelog.
//
// It provides the Level type covering the five severities the facade
// accepts, the Event type that captures one log call made before the
// backend is reachable, and the caller-tag helper used for call-site
// attribution.
//
// Event values are immutable once created. They are retained across
// the whole activation window and replayed into the backend with
// their original timestamps, so unlike typical hot-path log entries
// they are never pooled or recycled.
package core
