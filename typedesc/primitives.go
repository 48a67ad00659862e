package typedesc

// Primitive descriptors are interned package-level singletons: they carry
// infiniteRefcount, so Retain/Release never free or pool them.
var (
	Int64   = internPrimitive("int64", 8, 8)
	Float64 = internPrimitive("float64", 8, 8)
	Bool    = internPrimitive("bool", 1, 1)
	String  = internPrimitive("string", 16, 8) // Go string header: ptr+len
	Void    = internPrimitive("void", 0, 1)
)

func internPrimitive(name string, size, alignment int) *Descriptor {
	d := &Descriptor{Category: Primitive, Name: name, Size: size, Alignment: alignment}
	d.refcount.Store(infiniteRefcount)
	return d
}

// Lookup returns the interned primitive with the given name, or nil if name
// does not name a known primitive.
func Lookup(name string) *Descriptor {
	switch name {
	case "int64":
		return Int64
	case "float64":
		return Float64
	case "bool":
		return Bool
	case "string":
		return String
	case "void":
		return Void
	default:
		return nil
	}
}
