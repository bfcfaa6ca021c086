package hierarchy

import (
	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/replace"
	"github.com/katalvlaran/symseq/symbol"
)

// Operation names reported to the budget.
const (
	opMostDerived    = "hierarchy.MostDerived"
	opDerivedToFront = "hierarchy.DerivedToFront"
)

// MostDerived returns the most specific subtype of base among candidates,
// or base itself when no candidate is a strict subtype of it.
func MostDerived(base symbol.Symbol, candidates symbol.Sequence, rel Relation, opts ...budget.Option) (symbol.Symbol, error) {
	if rel == nil {
		return symbol.Symbol{}, ErrNilRelation
	}
	r, err := budget.Start(opMostDerived, opts...)
	if err != nil {
		return symbol.Symbol{}, err
	}
	if err = r.Enter(); err != nil {
		return symbol.Symbol{}, r.Finish(candidates.Len(), 0, err)
	}
	best := mostDerived(r, rel, base, candidates)
	r.Leave()

	return best, r.Finish(candidates.Len(), 1, nil)
}

// DerivedToFront reorders seq so that more derived elements come before
// their bases.
func DerivedToFront(seq symbol.Sequence, rel Relation, opts ...budget.Option) (symbol.Sequence, error) {
	if rel == nil {
		return symbol.Sequence{}, ErrNilRelation
	}
	r, err := budget.Start(opDerivedToFront, opts...)
	if err != nil {
		return symbol.Sequence{}, err
	}
	out, err := derivedToFront(r, rel, seq)

	return out, r.Finish(seq.Len(), out.Len(), err)
}

// mostDerived folds candidates, replacing best only on a strict subtype so
// that ties resolve to the earliest.
func mostDerived(r *budget.Run, rel Relation, best symbol.Symbol, candidates symbol.Sequence) symbol.Symbol {
	for x := range candidates.Values() {
		r.Call()
		if !rel.IsSubtype(x, best) {
			continue
		}
		r.Call()
		if !rel.IsSubtype(best, x) {
			best = x
		}
	}

	return best
}

func derivedToFront(r *budget.Run, rel Relation, seq symbol.Sequence) (symbol.Sequence, error) {
	if err := r.Enter(); err != nil {
		return symbol.Sequence{}, err
	}
	defer r.Leave()

	out := make([]symbol.Symbol, 0, seq.Len())
	rest := seq
	for !rest.IsEmpty() {
		head, tail := rest.First(), rest.Slice(1, rest.Len())
		x := mostDerived(r, rel, head, tail)
		out = append(out, x)

		// The head takes the place of the extracted element.
		var err error
		if rest, err = replace.ReplaceAll(x, head, tail, budget.Within(r)); err != nil {
			return symbol.Sequence{}, err
		}
	}

	return symbol.Of(out...), nil
}
