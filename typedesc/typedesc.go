// Package typedesc implements the type descriptor model shared by the
// semantic analyzer and the safety validator: a reference-counted
// Descriptor tree with interned primitives and a registry for breaking
// cyclic struct references.
package typedesc

import "sync/atomic"

// Category classifies the shape of a Descriptor.
type Category int8

const (
	Primitive Category = iota
	Slice
	Pointer
	Result
	Function
	Struct
	Enum
	Module
	Unknown
)

// String returns a human-readable name for the Category.
func (c Category) String() string {
	switch c {
	case Primitive:
		return "Primitive"
	case Slice:
		return "Slice"
	case Pointer:
		return "Pointer"
	case Result:
		return "Result"
	case Function:
		return "Function"
	case Struct:
		return "Struct"
	case Enum:
		return "Enum"
	case Module:
		return "Module"
	default:
		return "Unknown"
	}
}

// infiniteRefcount marks an interned, never-freed descriptor (a primitive
// singleton). Retain/Release are no-ops once a descriptor carries it.
const infiniteRefcount = -1

// Descriptor describes one type: its shape, size, alignment, name, and
// (for compound categories) a reference count governing when its slot may
// be returned to a pool.
type Descriptor struct {
	Category  Category
	Name      string
	Size      int
	Alignment int

	// Elem is the element type for Slice/Pointer/Result(Ok side).
	Elem *Descriptor
	// ErrElem is the error-side type for Result.
	ErrElem *Descriptor
	// Fields holds named members for Struct.
	Fields []Field
	// Params/Returns describe a Function's signature.
	Params  []*Descriptor
	Returns []*Descriptor

	refcount atomic.Int64
}

// Field is one named member of a Struct descriptor. A self- or mutually-
// referential member is stored as a TypeID resolved through a Registry,
// never as a direct *Descriptor, to avoid a reference cycle.
type Field struct {
	Name   string
	Type   *Descriptor
	TypeID TypeID
}

// newCompound constructs a Descriptor with refcount 1 (the caller's
// reference).
func newCompound(cat Category, name string, size, alignment int) *Descriptor {
	d := getCompound()
	d.Category, d.Name, d.Size, d.Alignment = cat, name, size, alignment
	d.refcount.Store(1)
	return d
}

// NewSlice constructs a refcounted slice descriptor over elem, retaining it.
func NewSlice(elem *Descriptor) *Descriptor {
	elem.Retain()
	d := newCompound(Slice, "[]"+elem.Name, 24, 8) // Go slice header: ptr+len+cap
	d.Elem = elem
	return d
}

// NewPointer constructs a refcounted pointer descriptor over elem, retaining it.
func NewPointer(elem *Descriptor) *Descriptor {
	elem.Retain()
	d := newCompound(Pointer, "*"+elem.Name, 8, 8)
	d.Elem = elem
	return d
}

// NewResult constructs a refcounted Result descriptor over (ok, err),
// retaining both.
func NewResult(ok, err *Descriptor) *Descriptor {
	ok.Retain()
	err.Retain()
	d := newCompound(Result, "Result<"+ok.Name+","+err.Name+">", 24, 8)
	d.Elem = ok
	d.ErrElem = err
	return d
}

// NewFunction constructs a refcounted function descriptor, retaining every
// parameter and return type.
func NewFunction(name string, params, returns []*Descriptor) *Descriptor {
	for _, p := range params {
		p.Retain()
	}
	for _, r := range returns {
		r.Retain()
	}
	d := newCompound(Function, name, 8, 8)
	d.Params = params
	d.Returns = returns
	return d
}

// NewStruct constructs a refcounted struct descriptor with the given
// fields. Fields referencing *Descriptor are retained; fields carrying
// only a TypeID (self/mutual reference) are left to the owning Registry.
func NewStruct(name string, fields []Field, size, alignment int) *Descriptor {
	for _, f := range fields {
		if f.Type != nil {
			f.Type.Retain()
		}
	}
	d := newCompound(Struct, name, size, alignment)
	d.Fields = fields
	return d
}

// NewEnum constructs a refcounted enum descriptor.
func NewEnum(name string, size, alignment int) *Descriptor {
	return newCompound(Enum, name, size, alignment)
}

// NewModule constructs a refcounted module descriptor (a named namespace,
// zero-sized).
func NewModule(name string) *Descriptor {
	return newCompound(Module, name, 0, 0)
}

// Retain increments the descriptor's reference count. A no-op on an
// interned primitive (infinite refcount).
func (d *Descriptor) Retain() {
	if d.refcount.Load() == infiniteRefcount {
		return
	}
	d.refcount.Add(1)
}

// Release decrements the descriptor's reference count. At zero, releases
// every retained child; the descriptor's own slot is then eligible for
// pool reuse via Pool.Put. A no-op on an interned primitive.
func (d *Descriptor) Release() {
	if d.refcount.Load() == infiniteRefcount {
		return
	}
	if d.refcount.Add(-1) != 0 {
		return
	}
	if d.Elem != nil {
		d.Elem.Release()
	}
	if d.ErrElem != nil {
		d.ErrElem.Release()
	}
	for _, f := range d.Fields {
		if f.Type != nil {
			f.Type.Release()
		}
	}
	for _, p := range d.Params {
		p.Release()
	}
	for _, r := range d.Returns {
		r.Release()
	}
	putCompound(d)
}

// RefCount returns the current reference count, or -1 for an interned
// primitive.
func (d *Descriptor) RefCount() int64 {
	return d.refcount.Load()
}
