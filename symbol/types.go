package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the iterable boundary.
var (
	// ErrNilSource is returned when Collect or FromSeq receives a nil source.
	ErrNilSource = errors.New("symbol: source is nil")

	// ErrUnbounded is returned when a source declares itself infinite.
	ErrUnbounded = errors.New("symbol: source is unbounded")
)

// Kind classifies what a Symbol denotes.
type Kind uint8

const (
	KindInvalid Kind = iota // KindInvalid: the zero Symbol.
	KindType                // KindType: a type-like entity, compared by identity.
	KindDecl                // KindDecl: a named declaration, compared by identity.
	KindValue               // KindValue: a constant, compared by value.
)

// String returns a short lowercase name for k.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindDecl:
		return "decl"
	case KindValue:
		return "value"
	default:
		return "invalid"
	}
}

// Qualifier is a bit set of type qualifiers. A qualified type is a different
// identity from its unqualified base.
type Qualifier uint8

const (
	QualConst     Qualifier = 1 << iota // read-only view
	QualImmutable                       // deeply immutable
	QualShared                          // shared between threads
)

// qualifierNames lists qualifiers in rendering order (innermost first).
var qualifierNames = []struct {
	q    Qualifier
	name string
}{
	{QualConst, "const"},
	{QualImmutable, "immutable"},
	{QualShared, "shared"},
}

// Trait is a bit set of properties carried by type-like Symbols.
type Trait uint16

const (
	Integral  Trait = 1 << iota // integer arithmetic type
	Signed                      // signed numeric type
	Unsigned                    // unsigned numeric type
	Floating                    // floating-point type
	Character                   // character type
	Boolean                     // boolean type
)

// entity is the shared identity behind a Symbol. Two Symbols built from
// different entities are never identical, whatever their names.
type entity struct {
	kind   Kind   // what the entity denotes
	name   string // display name; not part of identity
	traits Trait  // KindType only
	value  any    // KindValue only; may be non-comparable when built via Const[any]
}

// Symbol is an opaque, immutable identity token. The zero Symbol is invalid
// and is identical only to itself.
type Symbol struct {
	ent   *entity
	quals Qualifier
}

// NewType returns a fresh type-like Symbol. Each call yields a new identity.
func NewType(name string, traits ...Trait) Symbol {
	var t Trait
	for _, tr := range traits {
		t |= tr
	}

	return Symbol{ent: &entity{kind: KindType, name: name, traits: t}}
}

// Decl returns a fresh Symbol for a named declaration (an alias, a function,
// a module member). Declarations are not constant-foldable.
func Decl(name string) Symbol {
	return Symbol{ent: &entity{kind: KindDecl, name: name}}
}

// Const returns a constant-foldable Symbol holding v.
// Two constants are the same whenever their values are equal (see IsSame).
func Const[T comparable](v T) Symbol {
	return Symbol{ent: &entity{kind: KindValue, name: fmt.Sprint(v), value: v}}
}

// Qualify returns s with the qualifiers q added. Only type-like Symbols carry
// qualifiers; other kinds are returned unchanged.
func Qualify(s Symbol, q Qualifier) Symbol {
	if s.Kind() != KindType {
		return s
	}
	s.quals |= q

	return s
}

// Unqualified strips every qualifier from s.
func Unqualified(s Symbol) Symbol {
	s.quals = 0

	return s
}

// ValueOf extracts the constant payload of s as a T.
// It reports false if s is not a constant or holds a different type.
func ValueOf[T any](s Symbol) (T, bool) {
	var zero T
	if s.Kind() != KindValue {
		return zero, false
	}
	v, ok := s.ent.value.(T)

	return v, ok
}

// Kind reports what s denotes.
func (s Symbol) Kind() Kind {
	if s.ent == nil {
		return KindInvalid
	}

	return s.ent.kind
}

// IsZero reports whether s is the zero Symbol.
func (s Symbol) IsZero() bool { return s.ent == nil }

// Foldable reports whether s can be evaluated to a constant.
func (s Symbol) Foldable() bool { return s.Kind() == KindValue }

// Name returns the display name of s without qualifiers.
func (s Symbol) Name() string {
	if s.ent == nil {
		return ""
	}

	return s.ent.name
}

// Qualifiers returns the qualifier set of s.
func (s Symbol) Qualifiers() Qualifier { return s.quals }

// Traits returns the traits declared for a type-like Symbol.
func (s Symbol) Traits() Trait {
	if s.ent == nil {
		return 0
	}

	return s.ent.traits
}

// Has reports whether s carries every trait in t.
func (s Symbol) Has(t Trait) bool { return t != 0 && s.Traits()&t == t }

// Value returns the constant payload of s and whether s is a constant.
func (s Symbol) Value() (any, bool) {
	if s.Kind() != KindValue {
		return nil, false
	}

	return s.ent.value, true
}

// String renders s as name, qualifier(name) or the constant's value.
func (s Symbol) String() string {
	if s.ent == nil {
		return "<nil>"
	}
	out := s.ent.name
	for _, qn := range qualifierNames {
		if s.quals&qn.q != 0 {
			out = qn.name + "(" + out + ")"
		}
	}

	return out
}

// GoString makes %#v print something a reader can recognize.
func (s Symbol) GoString() string {
	var b strings.Builder
	b.WriteString("symbol.")
	b.WriteString(s.Kind().String())
	b.WriteByte('(')
	b.WriteString(s.String())
	b.WriteByte(')')

	return b.String()
}

// appendTo lets a Symbol be packed as a one-element part.
func (s Symbol) appendTo(dst []Symbol) []Symbol { return append(dst, s) }
