package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/symseq/symbol"
)

// TestIsSame_TypesCompareByIdentity verifies that same-named types are still distinct.
func TestIsSame_TypesCompareByIdentity(t *testing.T) {
	assert.True(t, symbol.IsSame(symbol.Int, symbol.Int))
	assert.False(t, symbol.IsSame(symbol.Int, symbol.Long))

	// Same name, different declaration: not the same.
	other := symbol.NewType("int", symbol.Integral, symbol.Signed)
	assert.False(t, symbol.IsSame(symbol.Int, other))
}

// TestIsSame_QualifiersAreIdentity verifies that qualifiers are part of a type's identity.
func TestIsSame_QualifiersAreIdentity(t *testing.T) {
	constInt := symbol.Qualify(symbol.Int, symbol.QualConst)
	assert.False(t, symbol.IsSame(symbol.Int, constInt), "int and const(int) must differ")
	assert.True(t, symbol.IsSame(constInt, symbol.Qualify(symbol.Int, symbol.QualConst)))
	assert.True(t, symbol.IsSame(symbol.Int, symbol.Unqualified(constInt)))
	assert.Equal(t, "const(int)", constInt.String())

	shared := symbol.Qualify(constInt, symbol.QualShared)
	assert.Equal(t, "shared(const(int))", shared.String())
	assert.False(t, symbol.IsSame(constInt, shared))
}

// TestIsSame_ConstantsCompareByValue covers numeric normalization and symmetry of value equality.
func TestIsSame_ConstantsCompareByValue(t *testing.T) {
	cases := []struct {
		name string
		a, b symbol.Symbol
		want bool
	}{
		{"equal ints", symbol.Const(7), symbol.Const(7), true},
		{"different ints", symbol.Const(7), symbol.Const(8), false},
		{"int vs int64", symbol.Const(1), symbol.Const(int64(1)), true},
		{"int vs uint8", symbol.Const(200), symbol.Const(uint8(200)), true},
		{"negative vs unsigned", symbol.Const(-1), symbol.Const(uint64(1<<64 - 1)), false},
		{"int vs float", symbol.Const(2), symbol.Const(2.0), true},
		{"float32 widened", symbol.Const(float32(0.5)), symbol.Const(0.5), true},
		{"strings", symbol.Const("a"), symbol.Const("a"), true},
		{"string vs int", symbol.Const("1"), symbol.Const(1), false},
		{"bools", symbol.Const(true), symbol.Const(true), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, symbol.IsSame(tc.a, tc.b))
			assert.Equal(t, tc.want, symbol.IsSame(tc.b, tc.a), "oracle must be symmetric")
		})
	}
}

// TestIsSame_MixedKinds checks comparisons across types, declarations and constants.
func TestIsSame_MixedKinds(t *testing.T) {
	alias := symbol.Decl("intAlias")
	assert.False(t, symbol.IsSame(symbol.Const(1), symbol.Int))
	assert.False(t, symbol.IsSame(alias, symbol.Int))
	assert.True(t, symbol.IsSame(alias, alias))
	assert.False(t, symbol.IsSame(alias, symbol.Decl("intAlias")))

	// Qualify leaves non-types untouched.
	assert.True(t, symbol.IsSame(alias, symbol.Qualify(alias, symbol.QualConst)))
	assert.True(t, symbol.IsSame(symbol.Symbol{}, symbol.Symbol{}))
	assert.False(t, symbol.IsSame(symbol.Symbol{}, symbol.Int))
}

// TestIsSame_NonComparablePayload verifies that constants holding values
// that cannot be compared with == fall back to identity instead of panicking.
func TestIsSame_NonComparablePayload(t *testing.T) {
	a := symbol.Const[any]([]int{1})
	b := symbol.Const[any]([]int{1})

	assert.NotPanics(t, func() { symbol.IsSame(a, b) })
	assert.True(t, symbol.IsSame(a, a))
	assert.False(t, symbol.IsSame(a, b))
	assert.False(t, symbol.IsSame(a, symbol.Const(1)))
	assert.False(t, symbol.IsSame(symbol.Const("x"), a))

	m := symbol.Const[any](map[string]int{"k": 1})
	assert.False(t, symbol.IsSame(m, a))
	assert.True(t, symbol.Equal(symbol.Of(a, m), symbol.Of(a, m)))
}

// TestValueOf verifies typed extraction of constant payloads.
func TestValueOf(t *testing.T) {
	v, ok := symbol.ValueOf[int](symbol.Const(42))
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = symbol.ValueOf[string](symbol.Const(42))
	assert.False(t, ok)

	_, ok = symbol.ValueOf[int](symbol.Int)
	assert.False(t, ok)
}

// TestTraitsAndKinds checks trait queries, kinds and the builtin universe.
func TestTraitsAndKinds(t *testing.T) {
	assert.True(t, symbol.UInt.Has(symbol.Unsigned))
	assert.True(t, symbol.UInt.Has(symbol.Integral|symbol.Unsigned))
	assert.False(t, symbol.Int.Has(symbol.Unsigned))
	assert.False(t, symbol.Int.Has(0))
	assert.Equal(t, symbol.KindType, symbol.Int.Kind())
	assert.Equal(t, symbol.KindValue, symbol.Const(1).Kind())
	assert.Equal(t, symbol.KindDecl, symbol.Decl("f").Kind())
	assert.Equal(t, symbol.KindInvalid, symbol.Symbol{}.Kind())
	assert.True(t, symbol.Const(1).Foldable())
	assert.False(t, symbol.Int.Foldable())
	assert.Equal(t, 12, symbol.Builtins().Len())
}
