package erase

import (
	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/symbol"
)

// Operation names reported to the budget.
const (
	opErase     = "erase.Erase"
	opEraseAll  = "erase.EraseAll"
	opEraseAllN = "erase.EraseAllN"
)

// Erase returns seq without its first element same as target.
// If no element matches, seq is returned unchanged.
func Erase(target symbol.Symbol, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	r, err := budget.Start(opErase, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := eraseFirst(r, target, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// EraseAll returns seq without any element same as target.
func EraseAll(target symbol.Symbol, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	r, err := budget.Start(opEraseAll, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := eraseAll(r, target, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// EraseAllN returns seq without any element same as one of keys.
func EraseAllN(keys, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	r, err := budget.Start(opEraseAllN, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := eraseKeys(r, keys, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// eraseFirst scans seq once and splices out the first match.
func eraseFirst(r *budget.Run, target symbol.Symbol, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	for i, x := range seq.All() {
		if r.Same(target, x) {
			return symbol.Join(seq.Slice(0, i), seq.Slice(i+1, seq.Len())), nil
		}
	}

	return seq, nil
}

// eraseAll is the divide-and-conquer kernel of EraseAll.
func eraseAll(r *budget.Run, target symbol.Symbol, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	n := seq.Len()
	if n <= r.Limits().LeafChunk {
		return eraseLeaf(r, target, seq), nil
	}

	mid := n / 2
	lo, err := eraseAll(r, target, seq.Slice(0, mid))
	if err != nil {
		return symbol.Sequence{}, err
	}
	hi, err := eraseAll(r, target, seq.Slice(mid, n))
	if err != nil {
		return symbol.Sequence{}, err
	}
	if lo.Len()+hi.Len() == n {
		return seq, nil
	}

	return symbol.Join(lo, hi), nil
}

// eraseLeaf filters a short run directly.
func eraseLeaf(r *budget.Run, target symbol.Symbol, seq symbol.Sequence) symbol.Sequence {
	kept := make([]symbol.Symbol, 0, seq.Len())
	for x := range seq.Values() {
		if !r.Same(target, x) {
			kept = append(kept, x)
		}
	}
	if len(kept) == seq.Len() {
		return seq
	}

	return symbol.Of(kept...)
}

// eraseKeys halves the key list at each level so depth stays logarithmic
// in the number of keys.
func eraseKeys(r *budget.Run, keys, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	if seq.IsEmpty() {
		return seq, nil
	}
	switch k := keys.Len(); k {
	case 0:
		return seq, nil
	case 1:
		return eraseAll(r, keys.At(0), seq)
	default:
		mid := k / 2
		rest, err := eraseKeys(r, keys.Slice(0, mid), seq)
		if err != nil {
			return symbol.Sequence{}, err
		}

		return eraseKeys(r, keys.Slice(mid, k), rest)
	}
}
