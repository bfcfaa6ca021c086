// Package filter selects the subsequence of a Sequence whose elements satisfy
// a caller-supplied Predicate.
//
// The predicate is evaluated on every element, left to right, with no
// short-circuit: if it fails on any element the whole call fails with
// ErrPredicate and there is no partial result. Retained elements keep their
// original order.
//
// Two tiers bound the construction cost:
//
//   - Sequences shorter than Limits.FilterChunk (5 by default) are resolved
//     through a precomputed selection table: the predicate results form a
//     bitmask, and the table maps (length, mask) straight to the kept
//     positions. No recursion, one frame.
//   - Longer sequences map a keep-or-drop expansion over every element with
//     transform.FlatMap (each element becomes itself or nothing) and let the
//     chunked Map engine do the rest.
//
// The enumerated table covers lengths up to 8, so FilterChunk values above 9
// behave like 9.
//
// Complexity: Time O(n) predicate calls, Depth as transform.FlatMap.
package filter

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/symbol"
	"github.com/katalvlaran/symseq/transform"
)

// Sentinel errors for filter.
var (
	// ErrNilPredicate is returned when Filter receives a nil Predicate.
	ErrNilPredicate = errors.New("filter: predicate is nil")

	// ErrPredicate wraps a failure of the caller's predicate.
	ErrPredicate = errors.New("filter: predicate failed")
)

const opFilter = "filter.Filter"

// enumeratedMax is the longest sequence covered by selectTable.
const enumeratedMax = 8

// Predicate decides whether a Symbol is kept. A non-nil error means the
// predicate cannot be evaluated for that Symbol.
type Predicate func(symbol.Symbol) (bool, error)

// Total adapts an infallible boolean function.
func Total(fn func(symbol.Symbol) bool) Predicate {
	if fn == nil {
		return nil
	}

	return func(x symbol.Symbol) (bool, error) { return fn(x), nil }
}

// Not negates p.
func Not(p Predicate) Predicate {
	if p == nil {
		return nil
	}

	return func(x symbol.Symbol) (bool, error) {
		ok, err := p(x)
		return !ok, err
	}
}

// selectTable[n][mask] lists, in order, the positions i < n whose bit is set
// in mask.
var selectTable = buildSelectTable(enumeratedMax)

func buildSelectTable(maxLen int) [][][]int {
	table := make([][][]int, maxLen+1)
	for n := 0; n <= maxLen; n++ {
		table[n] = make([][]int, 1<<n)
		for mask := 0; mask < 1<<n; mask++ {
			idx := make([]int, 0, n)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					idx = append(idx, i)
				}
			}
			table[n][mask] = idx
		}
	}

	return table
}

// Filter returns the elements of seq for which pred reports true.
func Filter(pred Predicate, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	if pred == nil {
		return symbol.Sequence{}, ErrNilPredicate
	}
	r, err := budget.Start(opFilter, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := filter(r, pred, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

func filter(r *budget.Run, pred Predicate, seq symbol.Sequence) (symbol.Sequence, error) {
	n := seq.Len()
	if n < r.Limits().FilterChunk && n <= enumeratedMax {
		return filterEnumerated(r, pred, seq)
	}

	keepOrDrop := func(x symbol.Symbol) (symbol.Sequence, error) {
		ok, err := pred(x)
		if err != nil {
			return symbol.Sequence{}, fmt.Errorf("%w: %w", ErrPredicate, err)
		}
		if !ok {
			return symbol.Sequence{}, nil
		}

		return symbol.Of(x), nil
	}

	return transform.FlatMap(keepOrDrop, seq, budget.Within(r))
}

// filterEnumerated evaluates pred on every element and looks the kept
// positions up in selectTable.
func filterEnumerated(r *budget.Run, pred Predicate, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	mask := 0
	for i, x := range seq.All() {
		r.Call()
		ok, err := pred(x)
		if err != nil {
			return symbol.Sequence{}, fmt.Errorf("%w: element %d (%s): %w", ErrPredicate, i, x, err)
		}
		if ok {
			mask |= 1 << i
		}
	}

	idx := selectTable[seq.Len()][mask]
	if len(idx) == seq.Len() {
		return seq, nil
	}
	out := make([]symbol.Symbol, len(idx))
	for k, i := range idx {
		out[k] = seq.At(i)
	}

	return symbol.Of(out...), nil
}
