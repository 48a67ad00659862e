package safety

import (
	"testing"

	"github.com/lumen-lang/lumenc/result"
	"github.com/stretchr/testify/assert"
)

func TestCheckResultTypeAcceptsMatchingTypeID(t *testing.T) {
	v := NewValidator(Testing(), nil, nil)
	a := result.OkInt64(42)
	got := v.CheckResultType(a, a.TypeID())
	assert.Nil(t, got)
}

func TestCheckResultTypeRejectsMismatchedTypeID(t *testing.T) {
	v := NewValidator(Testing(), nil, nil)
	a := result.OkInt64(42)
	got := v.CheckResultType(a, a.TypeID()+1)
	assert.NotNil(t, got)
}

func TestCheckResultTypeZeroExpectedMeansAny(t *testing.T) {
	v := NewValidator(Testing(), nil, nil)
	a := result.OkInt64(42)
	got := v.CheckResultType(a, 0)
	assert.Nil(t, got)
}

func TestCheckResultTypeDisabledReportsNilTrivially(t *testing.T) {
	v := NewValidator(Release(), nil, nil)
	a := result.OkInt64(42)
	got := v.CheckResultType(a, a.TypeID()+1)
	assert.Nil(t, got)
}

func TestCheckSliceTypeRejectsNilPointerWithLength(t *testing.T) {
	v := NewValidator(Testing(), nil, nil)
	got := v.CheckSliceType(SliceHeader{NonNilPtr: false, Len: 3, ElementSize: 8}, 0)
	assert.NotNil(t, got)
}

func TestCheckSliceTypeRejectsZeroElementSize(t *testing.T) {
	v := NewValidator(Testing(), nil, nil)
	got := v.CheckSliceType(SliceHeader{NonNilPtr: true, Len: 3, ElementSize: 0}, 0)
	assert.NotNil(t, got)
}

func TestCheckSliceTypeAcceptsWellFormedHeader(t *testing.T) {
	v := NewValidator(Testing(), nil, nil)
	got := v.CheckSliceType(SliceHeader{NonNilPtr: true, Len: 3, ElementSize: 8, TypeID: 5}, 5)
	assert.Nil(t, got)
}
