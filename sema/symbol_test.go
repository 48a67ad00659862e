package sema

import (
	"testing"

	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/typedesc"
	"github.com/stretchr/testify/assert"
)

func TestScopeLookupWalksToRoot(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)

	root.Insert(&SymbolEntry{Name: "x", Kind: Variable, Type: typedesc.Int64})

	if child.LookupLocal("x") != nil {
		t.Fatal("LookupLocal must not walk to parent scopes")
	}
	if child.Lookup("x") == nil {
		t.Fatal("Lookup must walk up to the root")
	}
	if child.Lookup("missing") != nil {
		t.Fatal("expected nil for an undefined name at any enclosing scope")
	}
}

func TestScopeInsertRejectsDuplicate(t *testing.T) {
	s := NewScope(nil)
	assert.Nil(t, s.Insert(&SymbolEntry{Name: "x", Kind: Variable, Type: typedesc.Int64}))

	d := s.Insert(&SymbolEntry{Name: "x", Kind: Variable, Type: typedesc.Int64})
	assert.NotNil(t, d)
	assert.Equal(t, diagnostic.DuplicateSymbol, d.Kind)
}

func TestScopeInsertAllowsPredeclaredShadow(t *testing.T) {
	s := NewScope(nil)
	s.Insert(&SymbolEntry{Name: "log", Kind: Function, Type: typedesc.Void, IsPredeclared: true})

	d := s.Insert(&SymbolEntry{Name: "log", Kind: Function, Type: typedesc.Void})
	assert.NotNil(t, d, "shadowing a predeclared symbol still reports a diagnostic")
	assert.Equal(t, diagnostic.SeverityWarning, d.Severity)
	assert.Equal(t, "log", s.LookupLocal("log").Name)
	assert.False(t, s.LookupLocal("log").IsPredeclared, "the user declaration must replace the predeclared entry")
}

func TestScopeInsertRejectsMismatchedKindShadow(t *testing.T) {
	s := NewScope(nil)
	s.Insert(&SymbolEntry{Name: "log", Kind: Function, Type: typedesc.Void, IsPredeclared: true})

	d := s.Insert(&SymbolEntry{Name: "log", Kind: Variable, Type: typedesc.Int64})
	assert.NotNil(t, d)
	assert.Equal(t, diagnostic.SeverityError, d.Severity, "a kind mismatch is not an allowed shadow")
}

func TestScopeIterationPreservesInsertionOrder(t *testing.T) {
	s := NewScope(nil)
	for _, name := range []string{"c", "a", "b"} {
		s.Insert(&SymbolEntry{Name: name, Kind: Variable, Type: typedesc.Int64})
	}
	assert.Equal(t, []string{"c", "a", "b"}, s.Names())
}

func TestScopeSortedNamesIsLexicalOrder(t *testing.T) {
	s := NewScope(nil)
	for _, name := range []string{"c", "a", "b"} {
		s.Insert(&SymbolEntry{Name: name, Kind: Variable, Type: typedesc.Int64})
	}
	assert.Equal(t, []string{"a", "b", "c"}, s.SortedNames())
	assert.Equal(t, []string{"c", "a", "b"}, s.Names(), "Names must remain insertion-order, unaffected by SortedNames")
}

func TestScopeAddAliasAndResolve(t *testing.T) {
	s := NewScope(nil)
	mod := NewScope(nil)
	mod.Insert(&SymbolEntry{Name: "member", Kind: Function, Type: typedesc.Void})

	assert.Nil(t, s.AddAlias("m", mod, diagnostic.Location{}))
	assert.Equal(t, mod, s.ResolveAlias("m"))
	assert.Nil(t, s.ResolveAlias("nope"))
}

func TestScopeAddAliasCollision(t *testing.T) {
	s := NewScope(nil)
	s.Insert(&SymbolEntry{Name: "x", Kind: Variable, Type: typedesc.Int64})

	d := s.AddAlias("x", NewScope(nil), diagnostic.Location{})
	assert.NotNil(t, d)
	assert.Equal(t, diagnostic.DuplicateSymbol, d.Kind)

	mod := NewScope(nil)
	assert.Nil(t, s.AddAlias("m", mod, diagnostic.Location{}))
	d = s.AddAlias("m", NewScope(nil), diagnostic.Location{})
	assert.NotNil(t, d)
}
