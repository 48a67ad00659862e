package typedesc

import "testing"

func TestRegistryReserveBindLookup(t *testing.T) {
	r := NewRegistry()
	id := r.Reserve()
	if r.Lookup(id) != nil {
		t.Fatal("expected an unbound id to resolve to nil")
	}
	d := NewStruct("Node", nil, 16, 8)
	r.Bind(id, d)
	if r.Lookup(id) != d {
		t.Fatal("expected Lookup to resolve the bound descriptor")
	}
}

func TestRegistrySelfReferentialStruct(t *testing.T) {
	r := NewRegistry()
	id := r.Reserve()
	node := NewStruct("Node", []Field{
		{Name: "value", Type: Int64},
		{Name: "next", TypeID: id}, // self-reference via TypeID, not *Descriptor
	}, 24, 8)
	r.Bind(id, node)

	resolved := r.Lookup(node.Fields[1].TypeID)
	if resolved != node {
		t.Fatal("expected the self-referential field to resolve back to its own struct")
	}
}

func TestRegistryUnknownIDReturnsNil(t *testing.T) {
	r := NewRegistry()
	if r.Lookup(TypeID(999)) != nil {
		t.Fatal("expected an out-of-range id to resolve to nil")
	}
}

func TestRegistryLenCountsIssuedIDs(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 0 {
		t.Fatalf("expected fresh registry to have 0 ids, got %d", r.Len())
	}
	r.Reserve()
	r.Reserve()
	if r.Len() != 2 {
		t.Fatalf("expected 2 ids, got %d", r.Len())
	}
}
