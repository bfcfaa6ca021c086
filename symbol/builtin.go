package symbol

// Builtin scalar types. Each is a distinct identity; qualify them with
// Qualify to obtain const/immutable/shared variants.
var (
	Bool   = NewType("bool", Boolean)
	Byte   = NewType("byte", Integral, Signed)
	UByte  = NewType("ubyte", Integral, Unsigned)
	Short  = NewType("short", Integral, Signed)
	UShort = NewType("ushort", Integral, Unsigned)
	Int    = NewType("int", Integral, Signed)
	UInt   = NewType("uint", Integral, Unsigned)
	Long   = NewType("long", Integral, Signed)
	ULong  = NewType("ulong", Integral, Unsigned)
	Float  = NewType("float", Floating, Signed)
	Double = NewType("double", Floating, Signed)
	Char   = NewType("char", Character)
)

// Builtins returns every builtin scalar type in declaration order.
func Builtins() Sequence {
	return Of(Bool, Byte, UByte, Short, UShort, Int, UInt, Long, ULong, Float, Double, Char)
}
