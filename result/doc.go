// Package result implements the tagged Ok/Err value at the center of the
// runtime: its statically-typed generic form R[T, E], its erased
// FFI-boundary form Any, a first-match pattern dispatcher (Match), and the
// combinator algebra (MapOk, MapErr, AndThen, OrElse, …) that both the
// analyzer and compiler-emitted code use to propagate and transform
// results.
//
// # Ownership
//
// Every value carries an Ownership hint (GC, ManualExternal, or Pinned)
// fixed at construction. Combinators preserve the ownership of whichever
// component they return, unless they construct a fresh value explicitly
// (e.g. the nil-mapping-function promotion in MapOkAny).
package result
