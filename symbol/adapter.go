package symbol

import "iter"

// Iterable is an eagerly enumerable source of Symbols.
// Sequence itself satisfies Iterable.
type Iterable interface {
	Values() iter.Seq[Symbol]
}

// Unbounded is implemented by sources that can tell whether they are
// infinite. Collect refuses any source whose Unbounded method reports true.
type Unbounded interface {
	Unbounded() bool
}

// Collect materializes src into a Sequence in iteration order.
// Returns ErrNilSource for a nil source and ErrUnbounded if src implements
// Unbounded and reports true.
func Collect(src Iterable) (Sequence, error) {
	if src == nil {
		return Sequence{}, ErrNilSource
	}
	if u, ok := src.(Unbounded); ok && u.Unbounded() {
		return Sequence{}, ErrUnbounded
	}
	if s, ok := src.(Sequence); ok {
		return s, nil
	}

	return FromSeq(src.Values())
}

// FromSeq materializes a finite iterator. The caller guarantees that seq
// terminates; use Collect for sources that can report boundedness.
func FromSeq(seq iter.Seq[Symbol]) (Sequence, error) {
	if seq == nil {
		return Sequence{}, ErrNilSource
	}
	var out []Symbol
	for x := range seq {
		out = append(out, x)
	}

	return Sequence{items: out}, nil
}
