package symbol

import "reflect"

// IsSame is the equality oracle.
//
// If both a and b are constant-foldable (Const), they are compared by value,
// with integers normalized across widths and signedness and floats widened,
// so Const(1) is the same as Const(int64(1)) and Const(1.0). Otherwise the
// comparison is by identity: same entity and same qualifiers. A constant is
// never the same as a type or a declaration. A constant whose payload cannot
// be compared with == (a slice smuggled in through Const[any]) is the same
// only as itself.
//
// Complexity: O(1).
func IsSame(a, b Symbol) bool {
	if a.Foldable() && b.Foldable() {
		if eq, ok := valueEqual(a.ent.value, b.ent.value); ok {
			return eq
		}
	}

	return a.ent == b.ent && a.quals == b.quals
}

// valueEqual compares two constant payloads by value. ok is false when
// either payload is not comparable.
func valueEqual(a, b any) (eq, ok bool) {
	na, nb := normalize(a), normalize(b)
	switch x := na.(type) {
	case int64:
		switch y := nb.(type) {
		case int64:
			return x == y, true
		case uint64:
			return x >= 0 && uint64(x) == y, true
		case float64:
			return float64(x) == y, true
		}

		return false, true
	case uint64:
		switch y := nb.(type) {
		case int64:
			return y >= 0 && x == uint64(y), true
		case uint64:
			return x == y, true
		case float64:
			return float64(x) == y, true
		}

		return false, true
	case float64:
		switch y := nb.(type) {
		case int64:
			return x == float64(y), true
		case uint64:
			return x == float64(y), true
		case float64:
			return x == y, true
		}

		return false, true
	}
	if !reflect.ValueOf(na).Comparable() || !reflect.ValueOf(nb).Comparable() {
		return false, false
	}

	// Differing dynamic types compare unequal without panicking.
	return na == nb, true
}

// normalize folds numeric payloads into int64, uint64 or float64.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return uint64(x)
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uintptr:
		return uint64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	}

	return v
}
