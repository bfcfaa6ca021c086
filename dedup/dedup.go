// Package dedup removes repeated Symbols from a Sequence, keeping the first
// occurrence of each and preserving first-occurrence order.
//
// NoDuplicates splits the sequence in half, deduplicates each half, then
// subtracts the deduplicated first half from the deduplicated second half
// with a single erase.EraseAllN batch and concatenates. Halves no longer than
// Limits.LeafChunk are deduplicated directly.
//
// Runs of duplicates collapse inside the leaves, so 1000 copies of one Symbol
// cost roughly 1000 comparisons.
//
// Complexity: Depth O(log n); Time O(n*d) oracle comparisons where d is the
// number of distinct elements.
package dedup

import (
	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/erase"
	"github.com/katalvlaran/symseq/symbol"
)

const opNoDuplicates = "dedup.NoDuplicates"

// NoDuplicates returns seq with every element after the first occurrence of
// its equivalence class (under symbol.IsSame) removed.
func NoDuplicates(seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	r, err := budget.Start(opNoDuplicates, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := noDuplicates(r, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

func noDuplicates(r *budget.Run, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	n := seq.Len()
	if n <= 1 {
		return seq, nil
	}
	if n <= r.Limits().LeafChunk {
		return dedupLeaf(r, seq), nil
	}

	mid := n / 2
	lo, err := noDuplicates(r, seq.Slice(0, mid))
	if err != nil {
		return symbol.Sequence{}, err
	}
	hi, err := noDuplicates(r, seq.Slice(mid, n))
	if err != nil {
		return symbol.Sequence{}, err
	}
	// Everything already kept on the left wins over its repeats on the right.
	hi, err = erase.EraseAllN(lo, hi, budget.Within(r))
	if err != nil {
		return symbol.Sequence{}, err
	}

	return symbol.Join(lo, hi), nil
}

// dedupLeaf keeps first occurrences of a short run.
func dedupLeaf(r *budget.Run, seq symbol.Sequence) symbol.Sequence {
	kept := make([]symbol.Symbol, 0, seq.Len())
next:
	for x := range seq.Values() {
		for _, k := range kept {
			if r.Same(k, x) {
				continue next
			}
		}
		kept = append(kept, x)
	}
	if len(kept) == seq.Len() {
		return seq
	}

	return symbol.Of(kept...)
}
