package hierarchy_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/hierarchy"
	"github.com/katalvlaran/symseq/symbol"
)

var (
	object = symbol.NewType("Object")
	animal = symbol.NewType("Animal")
	dog    = symbol.NewType("Dog")
	puppy  = symbol.NewType("Puppy")
	cat    = symbol.NewType("Cat")
	rock   = symbol.NewType("Rock")
)

// zoo builds Object <- Animal <- {Dog <- Puppy, Cat}, Object <- Rock.
func zoo(t *testing.T) *hierarchy.Lattice {
	t.Helper()
	l := hierarchy.NewLattice()
	require.NoError(t, l.Declare(animal, object))
	require.NoError(t, l.Declare(dog, animal))
	require.NoError(t, l.Declare(puppy, dog))
	require.NoError(t, l.Declare(cat, animal))
	require.NoError(t, l.Declare(rock, object))

	return l
}

// TestLattice verifies transitive subtype queries and rejection of bad declarations.
func TestLattice(t *testing.T) {
	l := zoo(t)
	assert.True(t, l.IsSubtype(puppy, object))
	assert.True(t, l.IsSubtype(dog, dog))
	assert.False(t, l.IsSubtype(animal, dog))
	assert.False(t, l.IsSubtype(cat, dog))
	assert.False(t, l.IsSubtype(rock, animal))

	assert.ErrorIs(t, l.Declare(object, puppy), hierarchy.ErrCycle)
	assert.ErrorIs(t, l.Declare(dog, dog), hierarchy.ErrCycle)
	assert.ErrorIs(t, l.Declare(symbol.Symbol{}, object), hierarchy.ErrZeroSymbol)
	assert.ErrorIs(t, l.Declare(dog, symbol.Symbol{}), hierarchy.ErrZeroSymbol)

	require.NoError(t, l.Declare(dog, animal)) // repeat is a no-op
	assert.Equal(t, []string{"Animal"}, l.Bases(dog).Strings())
}

// TestLattice_RejectsConstants verifies that value-compared constants never
// enter the identity-keyed table, so Const(1) and Const(int64(1)) cannot
// answer IsSubtype differently.
func TestLattice_RejectsConstants(t *testing.T) {
	l := hierarchy.NewLattice()
	assert.ErrorIs(t, l.Declare(symbol.Const(1), object), hierarchy.ErrValueSymbol)
	assert.ErrorIs(t, l.Declare(dog, symbol.Const(int64(1))), hierarchy.ErrValueSymbol)
	assert.True(t, l.Bases(dog).IsEmpty(), "a rejected declaration records nothing")
	assert.False(t, l.IsSubtype(symbol.Const(int64(1)), object))

	alias := symbol.Decl("Pet")
	require.NoError(t, l.Declare(alias, object))
	assert.True(t, l.IsSubtype(alias, object))
}

// TestLattice_ConcurrentReads checks that IsSubtype is safe under concurrent readers.
func TestLattice_ConcurrentReads(t *testing.T) {
	l := zoo(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, l.IsSubtype(puppy, animal))
			}
		}()
	}
	wg.Wait()
}

// TestMostDerived covers the strict-subtype fold, unrelated candidates and ties.
func TestMostDerived(t *testing.T) {
	l := zoo(t)
	cases := []struct {
		name       string
		base       symbol.Symbol
		candidates symbol.Sequence
		want       symbol.Symbol
	}{
		{"no candidates", animal, symbol.Empty(), animal},
		{"deepest wins", object, symbol.Of(animal, puppy, dog), puppy},
		{"unrelated ignored", animal, symbol.Of(rock, cat), cat},
		{"siblings keep earliest", animal, symbol.Of(cat, dog), cat},
		{"nothing below base", dog, symbol.Of(animal, cat, object), dog},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := hierarchy.MostDerived(tc.base, tc.candidates, l)
			require.NoError(t, err)
			assert.True(t, symbol.IsSame(tc.want, got), "want %s, got %s", tc.want, got)
		})
	}

	// Mutually convertible candidates tie; the earliest stays.
	both := hierarchy.RelationFunc(func(_, _ symbol.Symbol) bool { return true })
	got, err := hierarchy.MostDerived(symbol.Int, symbol.Of(symbol.Long, symbol.Float), both)
	require.NoError(t, err)
	assert.True(t, symbol.IsSame(symbol.Int, got))

	_, err = hierarchy.MostDerived(object, symbol.Empty(), nil)
	assert.ErrorIs(t, err, hierarchy.ErrNilRelation)
}

// TestDerivedToFront verifies that every element precedes all of its bases.
func TestDerivedToFront(t *testing.T) {
	l := zoo(t)
	got, err := hierarchy.DerivedToFront(symbol.Of(object, animal, puppy, dog), l)
	require.NoError(t, err)
	assert.Equal(t, []string{"Puppy", "Dog", "Animal", "Object"}, got.Strings())

	// Every element appears before all of its bases.
	got, err = hierarchy.DerivedToFront(symbol.Of(animal, rock, object, cat, puppy), l)
	require.NoError(t, err)
	require.Equal(t, 5, got.Len())
	for i := 0; i < got.Len(); i++ {
		for j := i + 1; j < got.Len(); j++ {
			assert.False(t, l.IsSubtype(got.At(j), got.At(i)) && !symbol.IsSame(got.At(i), got.At(j)),
				"%s is derived from %s but comes later", got.At(j), got.At(i))
		}
	}

	got, err = hierarchy.DerivedToFront(symbol.Empty(), l)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	_, err = hierarchy.DerivedToFront(symbol.Of(object), nil)
	assert.ErrorIs(t, err, hierarchy.ErrNilRelation)
}

// TestDerivedToFront_CountsRelationCalls ensures relation calls land in one metered run.
func TestDerivedToFront_CountsRelationCalls(t *testing.T) {
	m := budget.NewMeter()
	_, err := hierarchy.DerivedToFront(symbol.Of(object, animal, dog), zoo(t), budget.WithMeter(m))
	require.NoError(t, err)
	st := m.Snapshot()
	assert.Greater(t, st.Calls, int64(0))
	assert.Equal(t, int64(1), st.Runs)
}
