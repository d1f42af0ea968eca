// Package utils holds the small helpers shared by the model transport:
// [DoPostSync] for synchronous JSON round-trips with tracing events,
// [TruncateString] for keeping error bodies readable, and [Ptr] for optional
// request fields.
package utils
