// Package sorting orders Sequences with a stable merge sort driven by a
// caller-supplied comparator.
//
// Two comparator shapes are accepted:
//
//   - Less:    func(a, b) bool  reports whether a sorts strictly before b.
//   - Compare: func(a, b) int   negative, zero or positive.
//
// Both are normalized to a single "a may precede b" test (IsLessEq):
// !less(b, a) for Less, cmp(b, a) >= 0 for Compare. The generic entry points
// reject any other shape at compile time; ParseOrder does the same check at
// run time for comparators that arrive as interface values.
//
// Sort splits at the midpoint, sorts each half and merges. Before merging it
// tries two fast paths: if low.last may precede high.first the halves are
// already in order and are concatenated as is; if high.last sorts strictly
// before low.first the halves are concatenated the other way round. The
// second test is strict so equal elements never change sides, which keeps
// the sort stable.
//
// Complexity:
//
//   - Sort:     Time O(n log n) comparisons, Depth O(log n)
//   - Merge:    Time O(n)
//   - IsSorted: Time O(n), stops at the first inversion
//
// Errors:
//
//   - ErrComparatorShape  comparator is nil or of an unsupported type.
//   - budget errors       ErrOptionViolation, ErrDepthExceeded.
package sorting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symseq/symbol"
)

// ErrComparatorShape is returned for a nil comparator or one that returns
// neither bool nor int.
var ErrComparatorShape = errors.New("sorting: comparator must return bool or int")

// Less reports whether a sorts strictly before b.
type Less func(a, b symbol.Symbol) bool

// Compare returns a negative number, zero or a positive number when a sorts
// before, level with or after b.
type Compare func(a, b symbol.Symbol) int

// Comparator is the set of accepted comparator types.
type Comparator interface {
	Less | Compare | func(a, b symbol.Symbol) bool | func(a, b symbol.Symbol) int
}

// Order is a normalized comparator. The zero Order is invalid.
type Order struct {
	lessEq func(a, b symbol.Symbol) bool
}

// OrderOf normalizes cmp. A nil cmp yields the invalid zero Order.
func OrderOf[C Comparator](cmp C) Order {
	ord, _ := ParseOrder(cmp)

	return ord
}

// ParseOrder normalizes a comparator held in an interface value.
// Returns ErrComparatorShape if cmp is nil or not one of the Comparator types.
func ParseOrder(cmp any) (Order, error) {
	var less func(a, b symbol.Symbol) bool
	var tri func(a, b symbol.Symbol) int
	switch c := cmp.(type) {
	case Less:
		less = c
	case func(a, b symbol.Symbol) bool:
		less = c
	case Compare:
		tri = c
	case func(a, b symbol.Symbol) int:
		tri = c
	default:
		return Order{}, fmt.Errorf("%w: got %T", ErrComparatorShape, cmp)
	}

	switch {
	case less != nil:
		return Order{lessEq: func(a, b symbol.Symbol) bool { return !less(b, a) }}, nil
	case tri != nil:
		return Order{lessEq: func(a, b symbol.Symbol) bool { return tri(b, a) >= 0 }}, nil
	default:
		return Order{}, fmt.Errorf("%w: nil %T", ErrComparatorShape, cmp)
	}
}

// Valid reports whether o was built from a usable comparator.
func (o Order) Valid() bool { return o.lessEq != nil }

// LessEq reports whether a may precede b. It returns false on an invalid Order.
func (o Order) LessEq(a, b symbol.Symbol) bool {
	if o.lessEq == nil {
		return false
	}

	return o.lessEq(a, b)
}

// IsLessEq reports whether a may precede b under cmp.
func IsLessEq[C Comparator](cmp C, a, b symbol.Symbol) bool {
	return OrderOf(cmp).LessEq(a, b)
}
