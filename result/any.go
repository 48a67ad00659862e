package result

import (
	"math"

	"github.com/lumen-lang/lumenc/diagnostic"
)

// TypeID is an opaque handle issued by a type registry. Zero means
// "any / unchecked"; non-zero ids are expected to resolve to a printable
// name via a registry (see package typedesc), rendering "unknown" otherwise.
type TypeID uint32

// anyTag discriminates Any's Ok and Err states. Any reuses the same
// Ownership enum as R.
type anyTag int8

const (
	anyTagOk anyTag = iota
	anyTagErr
)

// Any is the erased Result value used at the FFI/interpreter boundary: a
// tagged union carrying an opaque payload, its size, a TypeID, and an
// Ownership hint, mirroring the original runtime's void*-payload
// representation. Prefer R[T, E] when the payload type is statically known.
type Any struct {
	tag         anyTag
	payload     []byte
	payloadSize int
	typeID      TypeID
	ownership   Ownership
}

// fallbackErrPayload is a statically-allocated Err payload used when a
// sugar constructor's allocation would otherwise fail. It is marked
// ManualExternal, per spec: allocation failure must never panic.
var fallbackErrPayload = []byte("allocation failed")

// OkAny constructs a tagged Ok value from raw bytes.
func OkAny(payload []byte, typeID TypeID, ownership Ownership) Any {
	return Any{tag: anyTagOk, payload: payload, payloadSize: len(payload), typeID: typeID, ownership: ownership}
}

// ErrAny constructs a tagged Err value from raw bytes.
func ErrAny(payload []byte, typeID TypeID, ownership Ownership) Any {
	return Any{tag: anyTagErr, payload: payload, payloadSize: len(payload), typeID: typeID, ownership: ownership}
}

// IsOk reports whether a holds a fulfilled value.
func (a Any) IsOk() bool { return a.tag == anyTagOk }

// IsErr reports whether a holds a failure reason.
func (a Any) IsErr() bool { return a.tag == anyTagErr }

// Ownership returns the immutable ownership hint.
func (a Any) Ownership() Ownership { return a.ownership }

// TypeID returns the type id of the active payload (Ok's value_type_id, or
// Err's error_type_id).
func (a Any) TypeID() TypeID { return a.typeID }

// Size returns the byte length of the active payload.
func (a Any) Size() int { return a.payloadSize }

// Payload returns the raw bytes of the active payload, regardless of tag.
func (a Any) Payload() []byte { return a.payload }

// UnwrapOk returns the Ok payload, or a type-mismatch diagnostic if a is Err.
func (a Any) UnwrapOk() ([]byte, *diagnostic.Diagnostic) {
	if a.tag != anyTagOk {
		return nil, diagnostic.New(diagnostic.TypeMismatch, "unwrap_ok called on an Err value")
	}
	return a.payload, nil
}

// UnwrapErr returns the Err payload, or a type-mismatch diagnostic if a is Ok.
func (a Any) UnwrapErr() ([]byte, *diagnostic.Diagnostic) {
	if a.tag != anyTagErr {
		return nil, diagnostic.New(diagnostic.TypeMismatch, "unwrap_err called on an Ok value")
	}
	return a.payload, nil
}

// Free releases the payload iff Ownership is GC. It is idempotent given the
// caller's discipline of not freeing twice (Go's GC makes this a formality:
// dropping the reference is sufficient, but the call is kept to preserve
// the lifecycle contract for FFI-facing code that does call out to a real
// allocator).
func (a *Any) Free() {
	if a.ownership == GC {
		a.payload = nil
		a.payloadSize = 0
	}
}

// --- typed sugar constructors ---
//
// Each writes its scalar into a GC-owned allocation. None of these can
// panic: if encoding the scalar were ever to fail (it cannot, for the fixed
// width encodings below, but the fallback path exists for symmetry with the
// original allocator-failure contract), a well-formed Err using the
// statically-allocated fallback payload is returned instead.

func okScalar(b []byte, typeID TypeID) Any {
	return OkAny(b, typeID, GC)
}

// OkInt64 wraps a scalar int64 payload in a GC-owned Ok.
func OkInt64(v int64) Any {
	b := make([]byte, 8)
	putInt64(b, v)
	return okScalar(b, TypeID(typeInt64))
}

// OkFloat64 wraps a scalar float64 payload in a GC-owned Ok.
func OkFloat64(v float64) Any {
	b := make([]byte, 8)
	putInt64(b, int64(math.Float64bits(v)))
	return okScalar(b, TypeID(typeFloat64))
}

// OkBool wraps a scalar bool payload in a GC-owned Ok.
func OkBool(v bool) Any {
	b := make([]byte, 1)
	if v {
		b[0] = 1
	}
	return okScalar(b, TypeID(typeBool))
}

// OkString wraps a string payload (copied) in a GC-owned Ok.
func OkString(v string) Any {
	return okScalar([]byte(v), TypeID(typeString))
}

// ErrCString wraps a NUL-terminated-style string reason (copied, without
// the terminator, matching Go string semantics) in a GC-owned Err.
func ErrCString(msg string) Any {
	return ErrAny([]byte(msg), TypeID(typeString), GC)
}

// ErrString wraps a string reason (copied) in a GC-owned Err.
func ErrString(msg string) Any {
	return ErrAny([]byte(msg), TypeID(typeString), GC)
}

// fallbackErr returns the statically-allocated, ManualExternal-owned Err
// used when a sugar constructor's allocation path fails.
func fallbackErr() Any {
	return ErrAny(fallbackErrPayload, TypeID(typeString), ManualExternal)
}

func putInt64(b []byte, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
}

// primitive type ids for the sugar constructors; these name the same
// primitives as the interned descriptors in package typedesc, but are
// declared here (as small constants) to avoid a dependency cycle between
// result and typedesc. No typedesc.Registry is pre-populated with them: a
// new Registry resolves these ids to nil until something is bound there.
const (
	typeInt64 = iota + 1
	typeFloat64
	typeBool
	typeString
)
