package symbol

import (
	"iter"
	"strings"
)

// Element is anything that can be packed into a Sequence: a single Symbol
// or a whole Sequence, which is spliced in place.
type Element interface {
	appendTo(dst []Symbol) []Symbol
}

// Sequence is a finite, ordered, immutable list of Symbols.
// The zero Sequence is empty and ready to use.
type Sequence struct {
	items []Symbol
}

// Of returns a Sequence holding a copy of items.
func Of(items ...Symbol) Sequence {
	if len(items) == 0 {
		return Sequence{}
	}
	out := make([]Symbol, len(items))
	copy(out, items)

	return Sequence{items: out}
}

// Empty returns the empty Sequence.
func Empty() Sequence { return Sequence{} }

// Pack flattens elems into one Sequence. Sequences among elems are spliced,
// never nested.
func Pack(elems ...Element) Sequence {
	var out []Symbol
	for _, e := range elems {
		if e == nil {
			continue
		}
		out = e.appendTo(out)
	}

	return Sequence{items: out}
}

// Join concatenates parts in order. When at most one part is non-empty it is
// returned as is, without copying.
func Join(parts ...Sequence) Sequence {
	total, nonEmpty, last := 0, 0, -1
	for i, p := range parts {
		if n := len(p.items); n > 0 {
			total += n
			nonEmpty++
			last = i
		}
	}
	switch nonEmpty {
	case 0:
		return Sequence{}
	case 1:
		return parts[last]
	}
	out := make([]Symbol, 0, total)
	for _, p := range parts {
		out = append(out, p.items...)
	}

	return Sequence{items: out}
}

// Len returns the number of Symbols in s.
func (s Sequence) Len() int { return len(s.items) }

// IsEmpty reports whether s has no elements.
func (s Sequence) IsEmpty() bool { return len(s.items) == 0 }

// At returns the i-th Symbol. It panics if i is out of range, like indexing.
func (s Sequence) At(i int) Symbol { return s.items[i] }

// First returns the first Symbol, or the zero Symbol when s is empty.
func (s Sequence) First() Symbol {
	if len(s.items) == 0 {
		return Symbol{}
	}

	return s.items[0]
}

// Last returns the last Symbol, or the zero Symbol when s is empty.
func (s Sequence) Last() Symbol {
	if len(s.items) == 0 {
		return Symbol{}
	}

	return s.items[len(s.items)-1]
}

// Slice returns s[i:j]. The result shares storage with s.
func (s Sequence) Slice(i, j int) Sequence {
	if i == j {
		return Sequence{}
	}

	return Sequence{items: s.items[i:j:j]}
}

// Values yields the Symbols of s in order.
func (s Sequence) Values() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, x := range s.items {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields index/Symbol pairs in order.
func (s Sequence) All() iter.Seq2[int, Symbol] {
	return func(yield func(int, Symbol) bool) {
		for i, x := range s.items {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Symbols returns a fresh copy of the elements of s.
func (s Sequence) Symbols() []Symbol {
	out := make([]Symbol, len(s.items))
	copy(out, s.items)

	return out
}

// Strings renders every element with Symbol.String.
func (s Sequence) Strings() []string {
	out := make([]string, len(s.items))
	for i, x := range s.items {
		out[i] = x.String()
	}

	return out
}

// String renders s as "(a, b, c)".
func (s Sequence) String() string {
	return "(" + strings.Join(s.Strings(), ", ") + ")"
}

// appendTo splices s into dst.
func (s Sequence) appendTo(dst []Symbol) []Symbol { return append(dst, s.items...) }

// Equal reports whether a and b have the same length and are pairwise the
// same under the equality oracle.
func Equal(a, b Sequence) bool {
	if len(a.items) != len(b.items) {
		return false
	}
	for i := range a.items {
		if !IsSame(a.items[i], b.items[i]) {
			return false
		}
	}

	return true
}
