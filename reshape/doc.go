// Package reshape provides index-level restructuring of Sequences:
//
//   - Reverse(seq):        seq[n-1], ..., seq[0].
//   - Stride(step, seq):   every step-th element. A positive step walks from
//     the front and always includes the first element; a negative step walks
//     from the back and always includes the last. A zero step is an error.
//   - Repeat(n, seq):      seq concatenated with itself n times; n == 0 is empty.
//
// Reverse handles sequences up to Limits.ReverseUnroll directly and splits
// longer ones in half (reverse each half, swap the halves). Repeat handles
// counts up to Limits.RepeatUnroll directly and otherwise uses binary
// exponentiation: build Repeat(n/2), double it, add one more copy when n is
// odd. Both keep recursion depth logarithmic.
//
// Complexity:
//
//   - Reverse: Time O(n),        Depth O(log n)
//   - Stride:  Time O(n/|step|), Depth 1
//   - Repeat:  Time O(n*len),    Depth O(log n)
//
// Errors:
//
//   - ErrZeroStride      Stride with step 0.
//   - ErrNegativeCount   Repeat with n < 0.
//   - budget errors      ErrOptionViolation, ErrDepthExceeded.
package reshape
