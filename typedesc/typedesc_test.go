package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrimitivesAreInterned(t *testing.T) {
	assert.Equal(t, int64(infiniteRefcount), Int64.RefCount())
	Int64.Retain()
	Int64.Release()
	assert.Equal(t, int64(infiniteRefcount), Int64.RefCount(), "retain/release must no-op on an interned primitive")
}

func TestLookupKnownAndUnknown(t *testing.T) {
	assert.Same(t, Int64, Lookup("int64"))
	assert.Same(t, String, Lookup("string"))
	assert.Nil(t, Lookup("nope"))
}

func TestSliceDescriptorRetainsElem(t *testing.T) {
	elem := NewStruct("Point", nil, 16, 8)
	before := elem.RefCount()
	sl := NewSlice(elem)
	assert.Equal(t, before+1, elem.RefCount())
	assert.Equal(t, Slice, sl.Category)
	assert.Same(t, elem, sl.Elem)
}

func TestReleaseAtZeroReleasesChildren(t *testing.T) {
	elem := NewStruct("Inner", nil, 8, 8)
	ptr := NewPointer(elem)

	assert.Equal(t, int64(2), elem.RefCount()) // 1 from NewStruct, 1 from NewPointer

	ptr.Release()
	assert.Equal(t, int64(1), elem.RefCount())

	elem.Release()
	assert.Equal(t, int64(0), elem.RefCount())
}

func TestResultDescriptorRetainsBothSides(t *testing.T) {
	errType := NewEnum("ErrCode", 4, 4)
	res := NewResult(Int64, errType)
	assert.Equal(t, Int64, res.Elem)
	assert.Equal(t, errType, res.ErrElem)
	assert.Equal(t, int64(infiniteRefcount), Int64.RefCount())
	assert.Equal(t, int64(2), errType.RefCount())
}

func TestPoolReuseDoesNotLeakStaleFields(t *testing.T) {
	a := NewStruct("A", []Field{{Name: "x", Type: Int64}}, 8, 8)
	a.Release()

	b := NewEnum("B", 1, 1)
	if len(b.Fields) != 0 {
		t.Fatal("pooled descriptor slot leaked stale Fields into a new Enum descriptor")
	}
}
