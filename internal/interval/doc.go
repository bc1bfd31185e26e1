// Package interval provides the half-open time interval [Start, End) used
// throughout the availability computation, together with the merge, overlap
// and subtraction operations the scheduling engine is built on.
//
// Intervals are immutable value objects: every operation returns new
// intervals and never mutates its operands. Comparisons are between absolute
// instants, so both operands may carry different wall-clock locations without
// affecting the result.
package interval
