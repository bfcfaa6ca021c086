package reshape

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/symbol"
)

// Sentinel errors for reshape.
var (
	// ErrZeroStride is returned by Stride when step is 0.
	ErrZeroStride = errors.New("reshape: stride step must be non-zero")

	// ErrNegativeCount is returned by Repeat when n is negative.
	ErrNegativeCount = errors.New("reshape: repeat count must be non-negative")
)

// Operation names reported to the budget.
const (
	opReverse = "reshape.Reverse"
	opStride  = "reshape.Stride"
	opRepeat  = "reshape.Repeat"
)

// Reverse returns seq in reverse order.
func Reverse(seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	r, err := budget.Start(opReverse, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := reverse(r, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// Stride returns every step-th element of seq, starting at the first element
// for step > 0 and at the last element for step < 0.
func Stride(step int, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	if step == 0 {
		return symbol.Sequence{}, ErrZeroStride
	}
	r, err := budget.Start(opStride, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := stride(r, step, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// Repeat returns seq concatenated with itself n times.
func Repeat(n int, seq symbol.Sequence, opts ...budget.Option) (symbol.Sequence, error) {
	if n < 0 {
		return symbol.Sequence{}, fmt.Errorf("%w: got %d", ErrNegativeCount, n)
	}
	r, err := budget.Start(opRepeat, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := repeat(r, n, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

func reverse(r *budget.Run, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	n := seq.Len()
	if n <= 1 {
		return seq, nil
	}
	if n <= r.Limits().ReverseUnroll {
		out := make([]symbol.Symbol, n)
		for i := range out {
			out[i] = seq.At(n - 1 - i)
		}

		return symbol.Of(out...), nil
	}

	mid := n / 2
	lo, err := reverse(r, seq.Slice(0, mid))
	if err != nil {
		return symbol.Sequence{}, err
	}
	hi, err := reverse(r, seq.Slice(mid, n))
	if err != nil {
		return symbol.Sequence{}, err
	}

	return symbol.Join(hi, lo), nil
}

func stride(r *budget.Run, step int, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	n := seq.Len()
	if n == 0 {
		return seq, nil
	}
	out := make([]symbol.Symbol, 0, 1+(n-1)/abs(step))
	if step > 0 {
		for i := 0; i < n; i += step {
			out = append(out, seq.At(i))
		}
	} else {
		for i := n - 1; i >= 0; i += step {
			out = append(out, seq.At(i))
		}
	}

	return symbol.Of(out...), nil
}

func repeat(r *budget.Run, n int, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	switch {
	case n == 0 || seq.IsEmpty():
		return symbol.Sequence{}, nil
	case n == 1:
		return seq, nil
	case n <= r.Limits().RepeatUnroll:
		parts := make([]symbol.Sequence, n)
		for i := range parts {
			parts[i] = seq
		}

		return symbol.Join(parts...), nil
	}

	half, err := repeat(r, n/2, seq)
	if err != nil {
		return symbol.Sequence{}, err
	}
	if n%2 == 1 {
		return symbol.Join(half, half, seq), nil
	}

	return symbol.Join(half, half), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
