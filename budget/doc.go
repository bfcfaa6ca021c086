// Package budget bounds and observes the construction cost of symseq
// algorithms.
//
// Every algorithm in symseq is a pure transformation, so the only resource
// worth managing is the cost of running the algorithm itself: how deep its
// recursion goes, how many frames it builds, how many oracle comparisons and
// caller-function invocations it makes. Each top-level call opens a Run,
// which:
//
//   - tracks recursion depth (Enter/Leave) and aborts with ErrDepthExceeded
//     once Limits.MaxDepth (if positive) is exceeded;
//   - counts oracle comparisons (Same) and caller invocations (Call);
//   - on Finish, folds its counters into an optional shared Meter and writes
//     one structured log entry through zap.
//
// Algorithms that compose other algorithms pass Within(run) so nested calls
// share the parent's depth and counters instead of opening a fresh Run.
//
// Limits:
//
//	map_chunk       150  largest sequence mapped directly, without splitting
//	filter_chunk      5  sequences shorter than this use the enumerated filter table
//	leaf_chunk        8  leaf size for divide-and-conquer erase and dedup
//	reverse_unroll    8  largest sequence reversed directly
//	repeat_unroll     8  largest count repeated directly
//	max_depth         0  recursion cap; 0 disables the cap
//
// Limits can be read from YAML with ParseLimits or LoadLimits. The thresholds
// only trade construction cost; any positive value yields the same results.
//
// Options:
//
//   - WithLimits(l)     replace all thresholds (validated).
//   - WithMaxDepth(d)   set only the recursion cap (d >= 0).
//   - WithMeter(m)      accumulate statistics into m.
//   - WithLogger(l)     log through l instead of a no-op logger.
//   - Within(run)       join an enclosing Run.
//
// Errors:
//
//   - ErrOptionViolation  an option received a meaningless value.
//   - ErrBadLimits        a Limits value failed validation.
//   - ErrDepthExceeded    recursion went past MaxDepth.
package budget
