package filter_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symseq/budget"
	"github.com/katalvlaran/symseq/filter"
	"github.com/katalvlaran/symseq/symbol"
)

var (
	isUnsigned = filter.Total(func(x symbol.Symbol) bool { return x.Has(symbol.Integral | symbol.Unsigned) })
	always     = filter.Total(func(symbol.Symbol) bool { return true })
	never      = filter.Total(func(symbol.Symbol) bool { return false })
	isEven     = filter.Total(func(x symbol.Symbol) bool {
		v, _ := symbol.ValueOf[int](x)
		return v%2 == 0
	})
)

// naturals returns the constants 0..n-1.
func naturals(n int) symbol.Sequence {
	out := make([]symbol.Symbol, n)
	for i := range out {
		out[i] = symbol.Const(i)
	}

	return symbol.Of(out...)
}

// TestFilter_Scenario keeps the unsigned integral builtins.
func TestFilter_Scenario(t *testing.T) {
	in := symbol.Of(symbol.Int, symbol.Byte, symbol.UByte, symbol.UInt, symbol.ULong)
	got, err := filter.Filter(isUnsigned, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"ubyte", "uint", "ulong"}, got.Strings())
}

// TestFilter_Properties checks order and partitioning on both tiers.
func TestFilter_Properties(t *testing.T) {
	// Lengths on both sides of the enumerated tier and the map chunk.
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 150, 151, 700} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			in := naturals(n)

			all, err := filter.Filter(always, in)
			require.NoError(t, err)
			assert.True(t, symbol.Equal(in, all))

			none, err := filter.Filter(never, in)
			require.NoError(t, err)
			assert.True(t, none.IsEmpty())

			evens, err := filter.Filter(isEven, in)
			require.NoError(t, err)
			assert.Equal(t, (n+1)/2, evens.Len())
			for i, x := range evens.All() {
				v, _ := symbol.ValueOf[int](x)
				assert.Equal(t, 2*i, v, "order preserved")
			}

			odds, err := filter.Filter(filter.Not(isEven), in)
			require.NoError(t, err)
			assert.Equal(t, n, evens.Len()+odds.Len(), "every dropped element fails the predicate")
		})
	}
}

// TestFilter_EvaluatesEveryElement ensures the predicate runs once per element.
func TestFilter_EvaluatesEveryElement(t *testing.T) {
	for _, n := range []int{4, 40} {
		calls := 0
		counting := func(x symbol.Symbol) (bool, error) {
			calls++
			return false, nil
		}
		_, err := filter.Filter(counting, naturals(n))
		require.NoError(t, err)
		assert.Equal(t, n, calls)
	}
}

// TestFilter_PredicateFailureAborts verifies that predicate errors abort with no result.
func TestFilter_PredicateFailureAborts(t *testing.T) {
	boom := errors.New("not instantiable")
	partial := func(x symbol.Symbol) (bool, error) {
		if x.Kind() != symbol.KindType {
			return false, boom
		}
		return true, nil
	}
	for _, n := range []int{3, 30} {
		in := symbol.Join(symbol.Of(symbol.Int), naturals(n))
		got, err := filter.Filter(partial, in)
		assert.ErrorIs(t, err, filter.ErrPredicate)
		assert.ErrorIs(t, err, boom)
		assert.True(t, got.IsEmpty())
	}

	_, err := filter.Filter(nil, naturals(3))
	assert.ErrorIs(t, err, filter.ErrNilPredicate)
	assert.Nil(t, filter.Not(nil))
	assert.Nil(t, filter.Total(nil))
}

// TestFilter_EnumeratedTierIsFlat checks that small inputs take a single frame.
func TestFilter_EnumeratedTierIsFlat(t *testing.T) {
	m := budget.NewMeter()
	_, err := filter.Filter(isEven, naturals(4), budget.WithMeter(m))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Snapshot().MaxDepth)
	assert.Equal(t, int64(4), m.Snapshot().Calls)

	limits := budget.DefaultLimits()
	limits.FilterChunk = 1
	m.Reset()
	got, err := filter.Filter(isEven, naturals(4), budget.WithMeter(m), budget.WithLimits(limits))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "2"}, got.Strings(), "tier choice never changes the result")
	assert.Equal(t, int64(4), m.Snapshot().Calls)
}
