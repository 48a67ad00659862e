package sema

import "github.com/lumen-lang/lumenc/typedesc"

// predeclaredSig is one row of the fixed predeclared roster.
type predeclaredSig struct {
	name    string
	params  []*typedesc.Descriptor
	returns *typedesc.Descriptor
}

// predeclaredRoster is installed into the root scope at NewAnalyzer
// construction. range is intentionally absent here: its two overloads are
// installed together as a single overload-set SymbolEntry, since the
// symbol table's uniqueness invariant forbids two entries sharing a name
// (see installRange).
var predeclaredRoster = []predeclaredSig{
	{name: "log", params: []*typedesc.Descriptor{typedesc.String}, returns: typedesc.Void},
	{name: "panic", params: []*typedesc.Descriptor{typedesc.String}, returns: neverType},
	{name: "exit", params: []*typedesc.Descriptor{typedesc.Int64}, returns: neverType},
	{name: "args", params: nil, returns: typedesc.NewSlice(typedesc.String)},
	{name: "infinite", params: nil, returns: infiniteIteratorType},
	{name: "len", params: []*typedesc.Descriptor{typedesc.NewSlice(typedesc.Int64)}, returns: usizeType},
}

// neverType models the diverging return type used by panic/exit: a
// zero-sized enum with no variants, since typedesc has no dedicated
// Never category.
var neverType = typedesc.NewEnum("Never", 0, 1)

// usizeType models len's pointer-sized unsigned return type.
var usizeType = typedesc.NewPointer(typedesc.Void) // 8-byte width, opaque payload

// infiniteIteratorType is a placeholder module-shaped descriptor for the
// InfiniteIterator return type; its internal shape is out of the core's
// scope.
var infiniteIteratorType = typedesc.NewModule("InfiniteIterator")

// installPredeclared injects the fixed roster into root, each entry
// carrying an eagerly-built Descriptor and IsPredeclared=true, plus the
// range overload set.
func installPredeclared(root *Scope) {
	for _, sig := range predeclaredRoster {
		fn := typedesc.NewFunction(sig.name, sig.params, []*typedesc.Descriptor{sig.returns})
		root.symbols[sig.name] = &SymbolEntry{Name: sig.name, Kind: Function, Type: fn, IsPredeclared: true}
		root.names = append(root.names, sig.name)
	}
	installRange(root)
}

// installRange binds range's two overloads — (int64)->[]int64 and
// (int64,int64)->[]int64, since typedesc has no 32-bit integer primitive —
// as a single overload-set SymbolEntry. range's second
// registration under the naive "one entry per signature" reading would
// collide with the first under the table's uniqueness invariant; the
// Open Question is resolved by collapsing both signatures into one
// Function-kind entry carrying both descriptors (primary in Type, the
// second in Overloads).
func installRange(root *Scope) {
	unary := typedesc.NewFunction("range", []*typedesc.Descriptor{typedesc.Int64}, []*typedesc.Descriptor{typedesc.NewSlice(typedesc.Int64)})
	binary := typedesc.NewFunction("range", []*typedesc.Descriptor{typedesc.Int64, typedesc.Int64}, []*typedesc.Descriptor{typedesc.NewSlice(typedesc.Int64)})
	root.symbols["range"] = &SymbolEntry{
		Name:          "range",
		Kind:          Function,
		Type:          unary,
		IsPredeclared: true,
		Overloads:     []*typedesc.Descriptor{binary},
	}
	root.names = append(root.names, "range")
}
