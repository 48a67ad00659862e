package sema

import (
	"golang.org/x/exp/slices"

	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/typedesc"
)

// SymbolKind classifies what a SymbolEntry names.
type SymbolKind int8

const (
	Variable SymbolKind = iota
	Function
	Type
	Parameter
	Field
)

// String returns a human-readable name for the SymbolKind.
func (k SymbolKind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case Function:
		return "Function"
	case Type:
		return "Type"
	case Parameter:
		return "Parameter"
	case Field:
		return "Field"
	default:
		return "Unknown"
	}
}

// SymbolEntry is one binding in a Scope.
type SymbolEntry struct {
	Name            string
	Kind            SymbolKind
	Type            *typedesc.Descriptor
	DeclarationSite diagnostic.Location
	IsPredeclared   bool

	// Overloads holds additional signatures sharing Name and Kind==Function,
	// e.g. range's two call shapes. Empty for every non-overloaded entry.
	Overloads []*typedesc.Descriptor
}

// aliasEntry binds an identifier to another scope, for `alias.member`
// lookups produced by the import resolver.
type aliasEntry struct {
	Alias  string
	Target *Scope
}

// Scope is an ordered name→SymbolEntry table with a parent link and an
// ordered alias list, mirroring a lexical scope.
type Scope struct {
	parent  *Scope
	names   []string // insertion order, for reproducible diagnostics
	symbols map[string]*SymbolEntry
	aliases []aliasEntry
}

// NewScope constructs an empty Scope with the given parent (nil for a root
// scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, symbols: make(map[string]*SymbolEntry)}
}

// Parent returns the scope's parent, or nil for a root scope.
func (s *Scope) Parent() *Scope { return s.parent }

// Insert binds entry under its Name in s. Fails with DuplicateSymbol if
// the name already exists, unless the existing entry is predeclared and
// entry is a user declaration of the same Kind — an allowed shadow,
// reported as a SeverityWarning diagnostic via the returned *Diagnostic
// (non-nil, but not an error the caller must abort on).
func (s *Scope) Insert(entry *SymbolEntry) *diagnostic.Diagnostic {
	existing, exists := s.symbols[entry.Name]
	if !exists {
		s.symbols[entry.Name] = entry
		s.names = append(s.names, entry.Name)
		return nil
	}
	if existing.IsPredeclared && !entry.IsPredeclared && existing.Kind == entry.Kind {
		s.symbols[entry.Name] = entry
		return diagnostic.New(diagnostic.DuplicateSymbol, "shadows predeclared symbol "+entry.Name).
			WithSeverity(diagnostic.SeverityWarning).At(entry.DeclarationSite)
	}
	return diagnostic.Newf(diagnostic.DuplicateSymbol, "symbol %q already declared at %s", entry.Name, existing.DeclarationSite).
		At(entry.DeclarationSite)
}

// Lookup walks from s up to the root, returning the nearest entry bound to
// name, or nil if none is found.
func (s *Scope) Lookup(name string) *SymbolEntry {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.symbols[name]; ok {
			return e
		}
	}
	return nil
}

// LookupLocal returns the entry bound to name in s only, without walking
// to parent scopes.
func (s *Scope) LookupLocal(name string) *SymbolEntry {
	return s.symbols[name]
}

// Names returns the bound names in insertion order.
func (s *Scope) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// SortedNames returns the bound names in lexical order, for diagnostic
// passes (e.g. "list every unused symbol") that need a stable,
// insertion-order-independent report.
func (s *Scope) SortedNames() []string {
	out := s.Names()
	slices.Sort(out)
	return out
}

// AddAlias binds alias in s to target, so that ResolveAlias(alias) returns
// target for an `alias.member` lookup against it; Lookup itself does not
// interpret dotted names. Fails with DuplicateSymbol if alias already
// names a symbol or another alias in s.
func (s *Scope) AddAlias(alias string, target *Scope, site diagnostic.Location) *diagnostic.Diagnostic {
	if _, exists := s.symbols[alias]; exists {
		return diagnostic.Newf(diagnostic.DuplicateSymbol, "alias %q collides with an existing symbol", alias).At(site)
	}
	for _, a := range s.aliases {
		if a.Alias == alias {
			return diagnostic.Newf(diagnostic.DuplicateSymbol, "alias %q already bound", alias).At(site)
		}
	}
	s.aliases = append(s.aliases, aliasEntry{Alias: alias, Target: target})
	return nil
}

// ResolveAlias returns the scope bound to alias in s, or nil if alias is
// not bound.
func (s *Scope) ResolveAlias(alias string) *Scope {
	for _, a := range s.aliases {
		if a.Alias == alias {
			return a.Target
		}
	}
	return nil
}
