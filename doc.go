// Package symseq is a toolkit of generic algorithms over sequences of opaque
// symbols: types, declarations and constants that are compared by a single
// equality oracle and ordered, filtered and transformed by caller-supplied
// functions.
//
// What is symseq?
//
//	A small, dependency-light library that brings together:
//		• Symbols & sequences: immutable values with one equality rule
//		• Lookup: IndexOf, Contains, Count
//		• Removal: Erase, EraseAll, EraseAllN, NoDuplicates
//		• Rewriting: Replace, ReplaceAll, Map, FlatMap, Filter
//		• Ordering: Sort, Merge, IsSorted with boolean or three-way comparators
//		• Shape: Reverse, Stride, Repeat
//		• Binding: ApplyLeft, ApplyRight over variadic templates
//		• Hierarchies: MostDerived, DerivedToFront over a subtype relation
//
// Why symseq?
//
//   - One oracle: constants compare by value, everything else by identity.
//   - Bounded construction: large inputs are split so that nesting depth
//     grows with log(n), never with n. Every call can report its cost.
//   - Tunable: chunk sizes and depth caps live in budget.Limits, loadable
//     from YAML.
//
// Packages:
//
//	symbol/     Symbol, Sequence, the equality oracle and the builtin universe
//	budget/     Limits, per-call Run accounting, Meter and zap logging hooks
//	lookup/     IndexOf, Contains, Count
//	erase/      Erase, EraseAll, EraseAllN
//	dedup/      NoDuplicates
//	replace/    Replace, ReplaceAll
//	transform/  Map, FlatMap
//	filter/     Filter, Predicate combinators
//	sorting/    Sort, SortBy, Merge, IsSorted, comparator shapes
//	reshape/    Reverse, Stride, Repeat
//	partial/    ApplyLeft, ApplyRight, Applied.Seq/One/Test
//	hierarchy/  Relation, Lattice, MostDerived, DerivedToFront
//
// Quick example:
//
//	seq := symbol.Of(symbol.Int, symbol.Long, symbol.Long, symbol.Int)
//	uniq, _ := dedup.NoDuplicates(seq) // (int, long)
//
// See the example programs under examples/ for longer walkthroughs.
package symseq
