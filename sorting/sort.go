package sorting

import (
	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/symbol"
)

// Operation names reported to the budget.
const (
	opSort  = "sorting.Sort"
	opMerge = "sorting.Merge"
)

// Sort returns a stable ascending permutation of seq under cmp.
func Sort[C Comparator](cmp C, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	return SortBy(OrderOf(cmp), seq, opts...)
}

// SortBy is Sort for an already normalized Order.
func SortBy(ord Order, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	if !ord.Valid() {
		return symbol.Sequence{}, ErrComparatorShape
	}
	r, err := budget.Start(opSort, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := sortRange(r, ord, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// Merge stably merges two sequences that are each sorted under cmp.
// On ties elements of low come first.
func Merge[C Comparator](cmp C, low, high symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	ord := OrderOf(cmp)
	if !ord.Valid() {
		return symbol.Sequence{}, ErrComparatorShape
	}
	r, err := budget.Start(opMerge, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	if err = r.Enter(); err != nil {
		return symbol.Sequence{}, r.Finish(low.Len()+high.Len(), 0, err)
	}
	out := merge(r, ord, low, high)
	r.Leave()

	return out, r.Finish(low.Len()+high.Len(), out.Len(), nil)
}

// IsSorted reports whether every adjacent pair of seq is in order under cmp.
// Sequences of length 0 or 1 are sorted; an unusable cmp reports false for
// anything longer.
func IsSorted[C Comparator](cmp C, seq symbol.Sequence) bool {
	ord := OrderOf(cmp)
	for i := 1; i < seq.Len(); i++ {
		if !ord.LessEq(seq.At(i-1), seq.At(i)) {
			return false
		}
	}

	return true
}

// sortRange is the recursive merge sort.
func sortRange(r *budget.Run, ord Order, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	n := seq.Len()
	if n <= 1 {
		return seq, nil
	}
	mid := n / 2
	lo, err := sortRange(r, ord, seq.Slice(0, mid))
	if err != nil {
		return symbol.Sequence{}, err
	}
	hi, err := sortRange(r, ord, seq.Slice(mid, n))
	if err != nil {
		return symbol.Sequence{}, err
	}

	return merge(r, ord, lo, hi), nil
}

// merge joins two sorted runs, taking from lo on ties.
func merge(r *budget.Run, ord Order, lo, hi symbol.Sequence) symbol.Sequence {
	le := func(a, b symbol.Symbol) bool {
		r.Call()
		return ord.LessEq(a, b)
	}

	if lo.IsEmpty() || hi.IsEmpty() {
		return symbol.Join(lo, hi)
	}
	// Already ascending across the split.
	if le(lo.Last(), hi.First()) {
		return symbol.Join(lo, hi)
	}
	// Fully inverted across the split; strict so ties keep their sides.
	if le(hi.Last(), lo.First()) && !le(lo.First(), hi.Last()) {
		return symbol.Join(hi, lo)
	}

	out := make([]symbol.Symbol, 0, lo.Len()+hi.Len())
	i, j := 0, 0
	for i < lo.Len() && j < hi.Len() {
		if le(lo.At(i), hi.At(j)) {
			out = append(out, lo.At(i))
			i++
		} else {
			out = append(out, hi.At(j))
			j++
		}
	}
	out = append(out, lo.Slice(i, lo.Len()).Symbols()...)
	out = append(out, hi.Slice(j, hi.Len()).Symbols()...)

	return symbol.Of(out...)
}
