// Package erase removes Symbols from a Sequence by equality-oracle match.
//
// What:
//
//   - Erase(target, seq):       drop the first element same as target.
//   - EraseAll(target, seq):    drop every element same as target.
//   - EraseAllN(keys, seq):     drop every element same as any key.
//
// How:
//
//   - Erase is a single linear pass that stops at the first match.
//   - EraseAll splits the sequence in half, erases each half and
//     concatenates; halves no longer than Limits.LeafChunk are scanned
//     directly. Recursion depth is O(log n).
//   - EraseAllN halves the key list at each level and runs one EraseAll per
//     key over what remains, so depth is also logarithmic in the key count.
//
// All three preserve the relative order of the elements they keep and
// return the input unchanged (no copy) when nothing matched.
//
// Complexity:
//
//   - Erase:      Time O(n),         Depth 1
//   - EraseAll:   Time O(n),         Depth O(log n)
//   - EraseAllN:  Time O(k*n),       Depth O(log k + log n)
//
// Errors: only budget errors (ErrOptionViolation, ErrDepthExceeded).
package erase
