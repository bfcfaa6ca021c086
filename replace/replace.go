// Package replace substitutes Symbols in a Sequence by equality-oracle match.
//
//   - Replace(from, to, seq):    substitute the first match, then stop.
//   - ReplaceAll(from, to, seq): substitute every match.
//
// Neither changes the length of the sequence. Both are single linear walks.
// When nothing matches the input is returned unchanged.
//
// Complexity: Time O(n) oracle comparisons, Depth 1.
package replace

import (
	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/symbol"
)

// Operation names reported to the budget.
const (
	opReplace    = "replace.Replace"
	opReplaceAll = "replace.ReplaceAll"
)

// Replace returns seq with its first element same as from replaced by to.
func Replace(from, to symbol.Symbol, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	r, err := budget.Start(opReplace, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := replaceFirst(r, from, to, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// ReplaceAll returns seq with every element same as from replaced by to.
func ReplaceAll(from, to symbol.Symbol, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	r, err := budget.Start(opReplaceAll, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := replaceEvery(r, from, to, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

func replaceFirst(r *budget.Run, from, to symbol.Symbol, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	for i, x := range seq.All() {
		if r.Same(from, x) {
			return symbol.Pack(seq.Slice(0, i), to, seq.Slice(i+1, seq.Len())), nil
		}
	}

	return seq, nil
}

func replaceEvery(r *budget.Run, from, to symbol.Symbol, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	var out []symbol.Symbol // allocated on the first match
	for i, x := range seq.All() {
		if !r.Same(from, x) {
			if out != nil {
				out = append(out, x)
			}
			continue
		}
		if out == nil {
			out = make([]symbol.Symbol, 0, seq.Len())
			out = append(out, seq.Slice(0, i).Symbols()...)
		}
		out = append(out, to)
	}
	if out == nil {
		return seq, nil
	}

	return symbol.Of(out...), nil
}
