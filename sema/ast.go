// Package sema implements the semantic analyzer substrate: the symbol
// table (S), the predeclared registry (P), the import resolver (I), and
// the minimal AST type surface the analyzer consumes from a parser it
// does not itself implement.
package sema

import "github.com/lumen-lang/lumenc/diagnostic"

// Node is the common capability of every AST node the analyzer consumes:
// a source location, for diagnostics.
type Node interface {
	Location() diagnostic.Location
}

// nodeBase gives embedding types a Location() method and a settable field,
// the way every concrete AST node below carries one.
type nodeBase struct {
	Loc diagnostic.Location
}

func (n nodeBase) Location() diagnostic.Location { return n.Loc }

// Decl is any top-level declaration node.
type Decl interface {
	Node
	declNode()
}

// Stmt is any statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Literal is any literal expression node.
type Literal interface {
	Expr
	literalNode()
}

// TypeNode is any type-reference node.
type TypeNode interface {
	Node
	typeNode()
}

// Pattern is any match-arm pattern node.
type Pattern interface {
	Node
	patternNode()
}

// --- declarations ---

type PackageDecl struct {
	nodeBase
	Name string
}

func (*PackageDecl) declNode() {}

type ImportDecl struct {
	nodeBase
	Path  string
	Alias string // empty if no alias
}

func (*ImportDecl) declNode() {}

type FunctionDecl struct {
	nodeBase
	Name       string
	Params     []Param
	ReturnType TypeNode
	Body       []Stmt
	Attrs      []Annotation
}

func (*FunctionDecl) declNode() {}

type Param struct {
	nodeBase
	Name string
	Type TypeNode
}

type StructDecl struct {
	nodeBase
	Name   string
	Fields []Param
	Attrs  []Annotation
}

func (*StructDecl) declNode() {}

type EnumVariantDecl struct {
	nodeBase
	Name   string
	Fields []Param
}

type EnumDecl struct {
	nodeBase
	Name     string
	Variants []EnumVariantDecl
	Attrs    []Annotation
}

func (*EnumDecl) declNode() {}

type ImplDecl struct {
	nodeBase
	TypeName string
	Methods  []*MethodDecl
}

func (*ImplDecl) declNode() {}

type MethodDecl struct {
	nodeBase
	Receiver string
	Function *FunctionDecl
}

func (*MethodDecl) declNode() {}

type ExternDecl struct {
	nodeBase
	Name       string
	Params     []Param
	ReturnType TypeNode
	Attrs      []Annotation
}

func (*ExternDecl) declNode() {}

type ConstDecl struct {
	nodeBase
	Name  string
	Type  TypeNode
	Value Expr
}

func (*ConstDecl) declNode() {}

// --- statements ---

type LetStmt struct {
	nodeBase
	Name    string
	Type    TypeNode // nil if inferred
	Value   Expr
	Mutable bool // distinguishes let vs var
}

func (*LetStmt) stmtNode() {}

type AssignStmt struct {
	nodeBase
	Target Expr
	Value  Expr
}

func (*AssignStmt) stmtNode() {}

type IfStmt struct {
	nodeBase
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if no else
}

func (*IfStmt) stmtNode() {}

type ForStmt struct {
	nodeBase
	Init Stmt // nil if absent
	Cond Expr // nil if absent
	Post Stmt // nil if absent
	Body []Stmt
}

func (*ForStmt) stmtNode() {}

type ReturnStmt struct {
	nodeBase
	Value Expr // nil for a bare return
}

func (*ReturnStmt) stmtNode() {}

type ExprStmt struct {
	nodeBase
	Value Expr
}

func (*ExprStmt) stmtNode() {}

type SpawnStmt struct {
	nodeBase
	Entry Expr
	Args  []Expr
}

func (*SpawnStmt) stmtNode() {}

type SpawnWithHandleStmt struct {
	nodeBase
	Handle string
	Entry  Expr
	Args   []Expr
}

func (*SpawnWithHandleStmt) stmtNode() {}

type MatchArm struct {
	nodeBase
	Pat  Pattern
	Body []Stmt
}

type MatchStmt struct {
	nodeBase
	Scrutinee Expr
	Arms      []MatchArm
}

func (*MatchStmt) stmtNode() {}

type UnsafeBlockStmt struct {
	nodeBase
	Body []Stmt
}

func (*UnsafeBlockStmt) stmtNode() {}

// --- expressions ---

type BinaryExpr struct {
	nodeBase
	Op          string
	Left, Right Expr
}

func (*BinaryExpr) exprNode() {}

type UnaryExpr struct {
	nodeBase
	Op      string
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

type CallExpr struct {
	nodeBase
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

type FieldAccessExpr struct {
	nodeBase
	Receiver Expr
	Field    string
}

func (*FieldAccessExpr) exprNode() {}

type IndexAccessExpr struct {
	nodeBase
	Receiver Expr
	Index    Expr
}

func (*IndexAccessExpr) exprNode() {}

type StructLiteralExpr struct {
	nodeBase
	TypeName string
	Fields   map[string]Expr
}

func (*StructLiteralExpr) exprNode() {}

type ArrayLiteralExpr struct {
	nodeBase
	Elements []Expr
}

func (*ArrayLiteralExpr) exprNode() {}

type EnumVariantExpr struct {
	nodeBase
	EnumName    string
	VariantName string
	Fields      map[string]Expr
}

func (*EnumVariantExpr) exprNode() {}

type AwaitExpr struct {
	nodeBase
	Handle Expr
}

func (*AwaitExpr) exprNode() {}

type IdentExpr struct {
	nodeBase
	Name string
}

func (*IdentExpr) exprNode() {}

// --- literals ---

type IntLiteral struct {
	nodeBase
	Value int64
}

func (*IntLiteral) exprNode()    {}
func (*IntLiteral) literalNode() {}

type FloatLiteral struct {
	nodeBase
	Value float64
}

func (*FloatLiteral) exprNode()    {}
func (*FloatLiteral) literalNode() {}

type BoolLiteral struct {
	nodeBase
	Value bool
}

func (*BoolLiteral) exprNode()    {}
func (*BoolLiteral) literalNode() {}

type StringLiteral struct {
	nodeBase
	Value string
}

func (*StringLiteral) exprNode()    {}
func (*StringLiteral) literalNode() {}

// --- type nodes ---

type BaseTypeNode struct {
	nodeBase
	Name string
}

func (*BaseTypeNode) typeNode() {}

type SliceTypeNode struct {
	nodeBase
	Elem TypeNode
}

func (*SliceTypeNode) typeNode() {}

type PointerTypeNode struct {
	nodeBase
	Elem TypeNode
}

func (*PointerTypeNode) typeNode() {}

type ResultTypeNode struct {
	nodeBase
	Ok  TypeNode
	Err TypeNode
}

func (*ResultTypeNode) typeNode() {}

type OptionTypeNode struct {
	nodeBase
	Elem TypeNode
}

func (*OptionTypeNode) typeNode() {}

// --- patterns ---

type EnumPattern struct {
	nodeBase
	EnumName    string
	VariantName string
	Fields      []FieldPattern
}

func (*EnumPattern) patternNode() {}

type StructPattern struct {
	nodeBase
	TypeName string
	Fields   []FieldPattern
}

func (*StructPattern) patternNode() {}

type FieldPattern struct {
	nodeBase
	Name    string
	Binding string
}

func (*FieldPattern) patternNode() {}

// --- annotations ---

// AnnotationValueKind classifies an annotation argument's literal kind.
type AnnotationValueKind int8

const (
	AnnotationString AnnotationValueKind = iota
	AnnotationIdent
	AnnotationInt
	AnnotationBool
)

// AnnotationArg is one `name=value` pair inside an annotation's argument list.
type AnnotationArg struct {
	Name  string
	Kind  AnnotationValueKind
	Value string // canonical text form; callers parse Int/Bool as needed
}

// Annotation models the bracketed `#[name]` / `#[name(none)]` /
// `#[name(arg=value,…)]` attribute surface attached to declarations and
// types. The legacy `@name` syntax is rejected by the parser with a
// migration diagnostic before it ever reaches the analyzer, so it has no
// representation here.
type Annotation struct {
	nodeBase
	Name string
	Args []AnnotationArg
}

// OwnershipHint extracts the `#[ownership(gc|c|pinned)]` special-cased
// annotation's value, if present. ok is false if no ownership annotation
// is attached.
func (a Annotation) OwnershipHint() (hint string, ok bool) {
	if a.Name != "ownership" || len(a.Args) != 1 {
		return "", false
	}
	return a.Args[0].Value, true
}
