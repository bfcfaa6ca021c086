// Package transform applies a caller-supplied function to every element of a
// Sequence.
//
// What:
//
//   - Map(f, seq):      out[i] = f(seq[i]); same length, same order.
//   - FlatMap(f, seq):  f returns a whole Sequence per element; the results
//     are concatenated in order (nesting always flattens).
//
// How (two-tier dispatch):
//
//   - Sequences of at most Limits.MapChunk elements (150 by default) are
//     processed by one direct loop: a single frame, no recursion.
//   - Longer sequences are split in half, each half mapped recursively, and
//     the results concatenated, so depth grows as O(log(n/MapChunk)).
//
// The function is invoked exactly once per element, left to right. If it
// fails on any element the whole call fails with ErrTransform wrapping the
// caller's error; there is no partial result.
//
// Complexity: Time O(n) invocations, Depth 1 + O(log(n/MapChunk)).
//
// Errors:
//
//   - ErrNilFunc     f is nil.
//   - ErrTransform   f failed on some element.
//   - budget errors  ErrOptionViolation, ErrDepthExceeded.
package transform
