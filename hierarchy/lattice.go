package hierarchy

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/symseq/symbol"
)

// Sentinel errors for hierarchy.
var (
	// ErrNilRelation is returned when MostDerived or DerivedToFront gets a nil Relation.
	ErrNilRelation = errors.New("hierarchy: relation is nil")

	// ErrZeroSymbol is returned when Declare gets the zero Symbol.
	ErrZeroSymbol = errors.New("hierarchy: zero symbol")

	// ErrValueSymbol is returned when Declare gets a constant. Constants compare
	// by value, which an identity-keyed table cannot honour.
	ErrValueSymbol = errors.New("hierarchy: constants cannot be declared")

	// ErrCycle is returned when Declare would make a type its own proper base.
	ErrCycle = errors.New("hierarchy: declaration creates a cycle")
)

// Relation answers "is derived a subtype of (convertible to) base".
// Implementations should be reflexive.
type Relation interface {
	IsSubtype(derived, base symbol.Symbol) bool
}

// RelationFunc adapts a plain function to Relation.
type RelationFunc func(derived, base symbol.Symbol) bool

// IsSubtype calls f.
func (f RelationFunc) IsSubtype(derived, base symbol.Symbol) bool { return f(derived, base) }

// Lattice is a table of declared direct bases. IsSubtype is the reflexive,
// transitive closure of the declarations. Keys are compared by identity, so
// Lattice is meant for type-like and declaration Symbols.
//
// All methods are safe for concurrent use.
type Lattice struct {
	mu    sync.RWMutex
	bases map[symbol.Symbol][]symbol.Symbol // derived -> direct bases, in declaration order
}

// NewLattice returns an empty Lattice.
func NewLattice() *Lattice {
	return &Lattice{bases: make(map[symbol.Symbol][]symbol.Symbol)}
}

// Declare records bases as direct bases of derived. Re-declaring a known
// base is a no-op. Returns ErrZeroSymbol for zero Symbols, ErrValueSymbol
// for constants and ErrCycle if any base is already derived (directly or
// not) from derived.
func (l *Lattice) Declare(derived symbol.Symbol, bases ...symbol.Symbol) error {
	if err := declarable(derived); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range bases {
		if err := declarable(b); err != nil {
			return err
		}
		if l.reachable(b, derived) {
			return fmt.Errorf("%w: %s -> %s", ErrCycle, derived, b)
		}
	}
	for _, b := range bases {
		if !containsIdentity(l.bases[derived], b) {
			l.bases[derived] = append(l.bases[derived], b)
		}
	}

	return nil
}

// Bases returns the direct bases declared for derived.
func (l *Lattice) Bases(derived symbol.Symbol) symbol.Sequence {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return symbol.Of(l.bases[derived]...)
}

// IsSubtype reports whether base is derived itself or reachable from it
// through declared bases.
func (l *Lattice) IsSubtype(derived, base symbol.Symbol) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.reachable(derived, base)
}

// reachable walks declared bases breadth-first from start. Caller holds mu.
func (l *Lattice) reachable(start, target symbol.Symbol) bool {
	if symbol.IsSame(start, target) {
		return true
	}
	visited := map[symbol.Symbol]bool{start: true}
	queue := []symbol.Symbol{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, b := range l.bases[cur] {
			if symbol.IsSame(b, target) {
				return true
			}
			if !visited[b] {
				visited[b] = true
				queue = append(queue, b)
			}
		}
	}

	return false
}

// declarable rejects Symbols that cannot key the table.
func declarable(s symbol.Symbol) error {
	switch s.Kind() {
	case symbol.KindInvalid:
		return ErrZeroSymbol
	case symbol.KindValue:
		return fmt.Errorf("%w: %s", ErrValueSymbol, s)
	}

	return nil
}

func containsIdentity(list []symbol.Symbol, s symbol.Symbol) bool {
	for _, x := range list {
		if symbol.IsSame(x, s) {
			return true
		}
	}

	return false
}
