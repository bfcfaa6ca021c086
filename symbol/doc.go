// Package symbol defines the data model shared by every symseq algorithm:
// opaque Symbols, immutable Sequences of them, and the equality oracle that
// decides when two Symbols are "the same".
//
// What:
//
//   - Symbol: an immutable identity token. A Symbol is type-like (NewType,
//     optionally Qualify'd), a named declaration (Decl), or a constant value
//     (Const). Only constants are constant-foldable.
//   - Sequence: a finite, ordered, fixed-length list of Symbols. Sequences are
//     never mutated; every operation returns a new Sequence. Nesting flattens:
//     Pack(a, Of(b, c), d) is the four-element Sequence (a, b, c, d).
//   - IsSame: the equality oracle. Two constants compare by value; anything
//     else compares by identity, including qualifiers, so int and const(int)
//     are different Symbols.
//   - Collect / FromSeq: the single boundary where an external iterable is
//     materialized into a Sequence. Sources that declare themselves unbounded
//     are rejected with ErrUnbounded.
//
// Why:
//
//   - Every erase, replace and dedup call in symseq funnels its comparisons
//     through IsSame, so the value-versus-identity rule lives in exactly one
//     place.
//
// Builtins:
//
//	Bool Byte UByte Short UShort Int UInt Long ULong Float Double Char
//
// carry Traits (Integral, Signed, Unsigned, Floating, Character, Boolean) so
// callers can write predicates such as "is unsigned" without a type system.
//
// Complexity:
//
//   - IsSame:  O(1)
//   - Of/Join: O(n) copy
//   - Slice:   O(1), shares the immutable backing array
//   - Equal:   O(n) oracle comparisons
//
// Errors:
//
//   - ErrNilSource   Collect/FromSeq received a nil source.
//   - ErrUnbounded   the source reports itself as infinite.
package symbol
