package sema

import (
	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/rtlog"
)

// importRecord is one accepted entry in the analyzer's import list.
type importRecord struct {
	Path     string
	Location diagnostic.Location
}

// Analyzer holds the state accumulated over the analysis of a single
// compilation unit: the scope tree, accumulated diagnostics, and the
// import list.
type Analyzer struct {
	Root    *Scope
	current *Scope

	imports    []importRecord
	importSeen map[string]diagnostic.Location

	Diagnostics diagnostic.List

	log *rtlog.Logger
}

// NewAnalyzer constructs an Analyzer with a fresh root scope carrying the
// predeclared roster. A nil logger falls back to the package-global
// logger (see rtlog.Or).
func NewAnalyzer(log *rtlog.Logger) *Analyzer {
	root := NewScope(nil)
	installPredeclared(root)
	return &Analyzer{
		Root:       root,
		current:    root,
		importSeen: make(map[string]diagnostic.Location),
		log:        rtlog.Or(log),
	}
}

// CurrentScope returns the scope currently being analyzed.
func (a *Analyzer) CurrentScope() *Scope { return a.current }

// PushScope enters a fresh child scope of the current one and returns it.
func (a *Analyzer) PushScope() *Scope {
	a.current = NewScope(a.current)
	return a.current
}

// PopScope returns to the parent of the current scope. A no-op at the root.
func (a *Analyzer) PopScope() {
	if a.current.parent != nil {
		a.current = a.current.parent
	}
}

// Imports returns the accepted import paths, in registration order.
func (a *Analyzer) Imports() []string {
	out := make([]string, len(a.imports))
	for i, imp := range a.imports {
		out[i] = imp.Path
	}
	return out
}

// AnalyzeImport implements the import resolver (I): dedups imp.Path
// against every previously accepted import, appends to the import list on
// success, and — when imp carries an alias — constructs a placeholder
// module scope and binds it via Scope.AddAlias. Both the dedup check and
// the alias-binding check report diagnostic.DuplicateSymbol at imp's
// location; only the dedup diagnostic cites the earlier import's location.
func (a *Analyzer) AnalyzeImport(imp *ImportDecl) {
	if firstLoc, seen := a.importSeen[imp.Path]; seen {
		a.Diagnostics.Add(diagnostic.Newf(diagnostic.DuplicateSymbol,
			"import %q already declared at %s", imp.Path, firstLoc).At(imp.Location()))
		a.log.Warn("sema.import").Str("path", imp.Path).Log("duplicate import rejected")
		return
	}

	a.importSeen[imp.Path] = imp.Location()
	a.imports = append(a.imports, importRecord{Path: imp.Path, Location: imp.Location()})

	if imp.Alias == "" {
		return
	}

	moduleScope := NewScope(nil) // placeholder; real module loading is out of core scope
	if d := a.current.AddAlias(imp.Alias, moduleScope, imp.Location()); d != nil {
		a.Diagnostics.Add(d)
		a.log.Warn("sema.import").Str("alias", imp.Alias).Log("alias collision rejected")
	}
}
