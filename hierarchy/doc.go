// Package hierarchy orders Symbols by a subtype relation.
//
// What:
//
//   - Relation: the external "is A a subtype of / convertible to B" oracle.
//     RelationFunc adapts a plain function; Lattice is a ready-made,
//     concurrency-safe table of declared bases.
//   - MostDerived(base, candidates, rel): a left fold that starts from base
//     and switches to a candidate whenever it is a strict subtype of the
//     current best. Candidates unrelated to base are ignored; ties keep the
//     earliest.
//   - DerivedToFront(seq, rel): repeatedly takes the most derived of the
//     remaining elements, emits it, and puts the head it displaced back in
//     its place (replace.ReplaceAll), producing a most-derived-first order.
//
// Complexity:
//
//   - MostDerived:     O(n) relation calls.
//   - DerivedToFront:  O(n²) relation calls.
//   - Lattice.IsSubtype: O(V+E) breadth-first walk over declared bases.
//
// Errors:
//
//   - ErrNilRelation   rel is nil.
//   - ErrZeroSymbol    Lattice.Declare got the zero Symbol.
//   - ErrValueSymbol   Lattice.Declare got a constant.
//   - ErrCycle         Lattice.Declare would make a type its own proper base.
package hierarchy
