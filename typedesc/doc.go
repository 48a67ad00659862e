// Package typedesc implements the type descriptor ("T") shared across the
// analyzer and safety validator: Descriptor nodes carry a Category, size,
// alignment, and compound body; primitives are interned singletons with an
// infinite refcount, while compound descriptors are reference counted and
// their slots pooled on release. Registry breaks cyclic struct references
// by storing a TypeID in place of a direct pointer.
package typedesc
