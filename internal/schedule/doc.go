// Package schedule computes open meeting time on a calendar owner's
// schedule.
//
// The computation is a pure function of its inputs: a weekday-indexed
// business-hour policy, a reference instant and look-ahead horizon, a set of
// busy events supplied by an external event source, and the attendee's
// timezone for presentation. Busy events are padded with a buffer and merged
// into a minimal disjoint set, each working day's window is clamped to the
// horizon and the busy set subtracted from it, and the surviving free windows
// are either emitted as-is or discretized into fixed-size bookable slots.
//
// The package performs no I/O and never reads the system clock; every
// invocation is independent, so concurrent use needs no synchronization.
package schedule
