package safety

import (
	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/result"
)

// CheckResultType verifies a's payload against an expected TypeID and the
// Ok/null-payload invariants: Ok or Err with a nil payload but a non-zero
// declared size is a violation, as is a type-id mismatch against expected.
// expected == 0 means "any/unchecked" and always passes the identity leg.
func (v *Validator) CheckResultType(a result.Any, expected result.TypeID) *diagnostic.Violation {
	if !v.cfg.TypeSafetyChecks {
		return nil
	}

	if a.Size() > 0 && a.Payload() == nil {
		return v.report("result_type", diagnostic.SeverityError, diagnostic.Location{},
			"non-null size with nil payload", a)
	}

	if expected != 0 && a.TypeID() != expected {
		return v.report("result_type", diagnostic.SeverityError, diagnostic.Location{},
			"type id mismatch", [2]result.TypeID{expected, a.TypeID()})
	}

	return nil
}

// SliceHeader mirrors the runtime's slice representation for the purposes
// of CheckSliceType: a pointer (as a boolean presence flag — the safety
// layer never dereferences it), a length, an element size, and the
// element's TypeID.
type SliceHeader struct {
	NonNilPtr   bool
	Len         int
	ElementSize int
	TypeID      result.TypeID
}

// CheckSliceType verifies a slice header: a non-null pointer with len > 0
// is required, element_size must be non-zero, and the element TypeID must
// match expected (0 = any/unchecked).
func (v *Validator) CheckSliceType(h SliceHeader, expected result.TypeID) *diagnostic.Violation {
	if !v.cfg.SliceBounds {
		return nil
	}

	if h.Len > 0 && !h.NonNilPtr {
		return v.report("slice_type", diagnostic.SeverityError, diagnostic.Location{},
			"nil pointer with non-zero length", h)
	}

	if h.ElementSize == 0 {
		return v.report("slice_type", diagnostic.SeverityError, diagnostic.Location{},
			"zero element size", h)
	}

	if expected != 0 && h.TypeID != expected {
		return v.report("slice_type", diagnostic.SeverityError, diagnostic.Location{},
			"element type mismatch", [2]result.TypeID{expected, h.TypeID})
	}

	return nil
}
