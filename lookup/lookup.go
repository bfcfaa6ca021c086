// Package lookup implements the membership instructions of symseq:
// IndexOf, Contains and Count. Each is a single linear scan through the
// equality oracle.
//
// Complexity: Time O(n) oracle comparisons, Memory O(1).
package lookup

import "github.com/katalvlaran/symseq/symbol"

// IndexOf returns the first index i with symbol.IsSame(target, seq.At(i)),
// or -1 if no element matches.
func IndexOf(target symbol.Symbol, seq symbol.Sequence) int {
	for i, x := range seq.All() {
		if symbol.IsSame(target, x) {
			return i
		}
	}

	return -1
}

// Contains reports whether any element of seq is the same as target.
func Contains(target symbol.Symbol, seq symbol.Sequence) bool {
	return IndexOf(target, seq) >= 0
}

// Count returns how many elements of seq are the same as target.
func Count(target symbol.Symbol, seq symbol.Sequence) int {
	n := 0
	for x := range seq.Values() {
		if symbol.IsSame(target, x) {
			n++
		}
	}

	return n
}
