package transform

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/symbol"
)

// Sentinel errors for transform.
var (
	// ErrNilFunc is returned when Map or FlatMap receives a nil function.
	ErrNilFunc = errors.New("transform: function is nil")

	// ErrTransform wraps a failure of the caller's function.
	ErrTransform = errors.New("transform: element transform failed")
)

// Operation names reported to the budget.
const (
	opMap     = "transform.Map"
	opFlatMap = "transform.FlatMap"
)

// Func maps one Symbol to one Symbol.
type Func func(symbol.Symbol) (symbol.Symbol, error)

// Expand maps one Symbol to any number of Symbols.
type Expand func(symbol.Symbol) (symbol.Sequence, error)

// Total adapts an infallible one-to-one function.
func Total(fn func(symbol.Symbol) symbol.Symbol) Func {
	if fn == nil {
		return nil
	}

	return func(x symbol.Symbol) (symbol.Symbol, error) { return fn(x), nil }
}

// step appends the image of x to dst.
type step func(dst []symbol.Symbol, x symbol.Symbol) ([]symbol.Symbol, error)

// Map returns the Sequence f(seq[0]), f(seq[1]), ...
func Map(f Func, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	if f == nil {
		return symbol.Sequence{}, ErrNilFunc
	}
	r, err := budget.Start(opMap, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	one := func(dst []symbol.Symbol, x symbol.Symbol) ([]symbol.Symbol, error) {
		y, err := f(x)
		if err != nil {
			return dst, err
		}

		return append(dst, y), nil
	}
	out, err := mapChunked(r, seq, 0, one)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// FlatMap returns the concatenation f(seq[0]) ++ f(seq[1]) ++ ...
func FlatMap(f Expand, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	if f == nil {
		return symbol.Sequence{}, ErrNilFunc
	}
	r, err := budget.Start(opFlatMap, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	many := func(dst []symbol.Symbol, x symbol.Symbol) ([]symbol.Symbol, error) {
		ys, err := f(x)
		if err != nil {
			return dst, err
		}
		for y := range ys.Values() {
			dst = append(dst, y)
		}

		return dst, nil
	}
	out, err := mapChunked(r, seq, 0, many)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// mapChunked maps short sequences in one loop and splits longer ones in
// half. offset is the position of seq within the caller's input, used only
// for error messages.
func mapChunked(r *budget.Run, seq symbol.Sequence, offset int, apply step) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	n := seq.Len()
	if n <= r.Limits().MapChunk {
		out := make([]symbol.Symbol, 0, n)
		var err error
		for i, x := range seq.All() {
			r.Call()
			if out, err = apply(out, x); err != nil {
				return symbol.Sequence{}, fmt.Errorf("%w: element %d (%s): %w", ErrTransform, offset+i, x, err)
			}
		}

		return symbol.Of(out...), nil
	}

	mid := n / 2
	lo, err := mapChunked(r, seq.Slice(0, mid), offset, apply)
	if err != nil {
		return symbol.Sequence{}, err
	}
	hi, err := mapChunked(r, seq.Slice(mid, n), offset+mid, apply)
	if err != nil {
		return symbol.Sequence{}, err
	}

	return symbol.Join(lo, hi), nil
}
