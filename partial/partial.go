// Package partial binds leading or trailing arguments of a symbol Template.
//
//	ApplyLeft(F, a, b).Seq(x, y)  == F(a, b, x, y)
//	ApplyRight(F, a, b).Seq(x, y) == F(x, y, a, b)
//
// A Template always produces a Sequence. Rather than silently collapsing a
// one-element result into a bare Symbol, Applied exposes both readings and
// lets the caller choose:
//
//   - Seq(rest...)  the full Sequence result.
//   - One(rest...)  exactly one Symbol, else ErrNotSingle.
//   - Test(x)       a single boolean constant, usable as filter.Predicate.
//   - Map(x)        a single Symbol, usable as transform.Func.
//   - Expand(x)     a Sequence, usable as transform.Expand.
//
// Errors:
//
//   - ErrNilTemplate   the Template is nil.
//   - ErrNotSingle     One/Test/Map got a result whose length is not 1.
//   - ErrNotBoolean    Test got a result that is not a bool constant.
//   - ErrArity         a library Template got the wrong number of arguments.
package partial

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symseq/symbol"
)

// Sentinel errors for partial application.
var (
	ErrNilTemplate = errors.New("partial: template is nil")
	ErrNotSingle   = errors.New("partial: result is not a single symbol")
	ErrNotBoolean  = errors.New("partial: result is not a boolean constant")
	ErrArity       = errors.New("partial: wrong number of arguments")
)

// Template is a construction-time function from Symbols to a Sequence.
type Template func(args ...symbol.Symbol) (symbol.Sequence, error)

// Lift wraps a function producing one Symbol as a Template.
func Lift(fn func(args ...symbol.Symbol) symbol.Symbol) Template {
	if fn == nil {
		return nil
	}

	return func(args ...symbol.Symbol) (symbol.Sequence, error) {
		return symbol.Of(fn(args...)), nil
	}
}

// Same is the equality oracle as a two-argument Template yielding a bool
// constant. ApplyLeft(Same, x).Test is "is the same as x".
var Same Template = func(args ...symbol.Symbol) (symbol.Sequence, error) {
	if len(args) != 2 {
		return symbol.Sequence{}, fmt.Errorf("%w: Same takes 2, got %d", ErrArity, len(args))
	}

	return symbol.Of(symbol.Const(symbol.IsSame(args[0], args[1]))), nil
}

// Applied is a Template with some arguments already bound.
type Applied struct {
	tmpl  Template
	bound symbol.Sequence
	right bool // bound arguments go after the free ones
}

// ApplyLeft binds bound as the leading arguments of t.
func ApplyLeft(t Template, bound ...symbol.Symbol) Applied {
	return Applied{tmpl: t, bound: symbol.Of(bound...)}
}

// ApplyRight binds bound as the trailing arguments of t.
func ApplyRight(t Template, bound ...symbol.Symbol) Applied {
	return Applied{tmpl: t, bound: symbol.Of(bound...), right: true}
}

// Bound returns the bound arguments.
func (a Applied) Bound() symbol.Sequence { return a.bound }

// Seq invokes the template with the free arguments rest.
func (a Applied) Seq(rest ...symbol.Symbol) (symbol.Sequence, error) {
	if a.tmpl == nil {
		return symbol.Sequence{}, ErrNilTemplate
	}
	free := symbol.Of(rest...)
	args := symbol.Join(a.bound, free)
	if a.right {
		args = symbol.Join(free, a.bound)
	}

	return a.tmpl(args.Symbols()...)
}

// One invokes the template and requires exactly one resulting Symbol.
func (a Applied) One(rest ...symbol.Symbol) (symbol.Symbol, error) {
	out, err := a.Seq(rest...)
	if err != nil {
		return symbol.Symbol{}, err
	}
	if out.Len() != 1 {
		return symbol.Symbol{}, fmt.Errorf("%w: got %d", ErrNotSingle, out.Len())
	}

	return out.At(0), nil
}

// Test invokes the template on x and reads the result as a bool constant.
func (a Applied) Test(x symbol.Symbol) (bool, error) {
	s, err := a.One(x)
	if err != nil {
		return false, err
	}
	v, ok := symbol.ValueOf[bool](s)
	if !ok {
		return false, fmt.Errorf("%w: got %s", ErrNotBoolean, s)
	}

	return v, nil
}

// Map invokes the template on x and requires a single Symbol.
func (a Applied) Map(x symbol.Symbol) (symbol.Symbol, error) { return a.One(x) }

// Expand invokes the template on x.
func (a Applied) Expand(x symbol.Symbol) (symbol.Sequence, error) { return a.Seq(x) }
