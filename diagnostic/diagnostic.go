// Package diagnostic models the error taxonomy and structured diagnostics
// produced and consumed across the semantic analyzer, the safety validator,
// and the task core.
package diagnostic

import (
	"errors"
	"fmt"
	"time"
)

// Kind is a disjoint error-taxonomy tag, per the analyzer/runtime error model.
type Kind int

const (
	OutOfMemory Kind = iota
	InvalidArgument
	NullPointer
	BoundsCheck
	TypeMismatch
	OwnershipViolation
	ThreadError
	IoError
	CryptoError
	RuntimeError
	DuplicateSymbol
	InvalidSyntax
	IncompletePattern
	RedundantPattern
	UnreachablePattern
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case OutOfMemory:
		return "OutOfMemory"
	case InvalidArgument:
		return "InvalidArgument"
	case NullPointer:
		return "NullPointer"
	case BoundsCheck:
		return "BoundsCheck"
	case TypeMismatch:
		return "TypeMismatch"
	case OwnershipViolation:
		return "OwnershipViolation"
	case ThreadError:
		return "ThreadError"
	case IoError:
		return "IoError"
	case CryptoError:
		return "CryptoError"
	case RuntimeError:
		return "RuntimeError"
	case DuplicateSymbol:
		return "DuplicateSymbol"
	case InvalidSyntax:
		return "InvalidSyntax"
	case IncompletePattern:
		return "IncompletePattern"
	case RedundantPattern:
		return "RedundantPattern"
	case UnreachablePattern:
		return "UnreachablePattern"
	default:
		return fmt.Sprintf("UnknownKind(%d)", int(k))
	}
}

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable name for the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Location identifies a point in source text.
type Location struct {
	File   string
	Line   int
	Column int
}

// String formats the location as "file:line:column", omitting empty parts.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is a single analyzer-level finding.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Location Location
	Message  string
	Cause    error
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	if d.Location.File == "" && d.Location.Line == 0 && d.Location.Column == 0 {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Kind, d.Message)
}

// Unwrap returns the underlying cause, for use with [errors.Is] and [errors.As].
func (d *Diagnostic) Unwrap() error {
	return d.Cause
}

// Is reports whether target is a *Diagnostic with the same Kind.
func (d *Diagnostic) Is(target error) bool {
	var other *Diagnostic
	if errors.As(target, &other) {
		return other.Kind == d.Kind
	}
	return false
}

// New constructs a Diagnostic with SeverityError and no location.
func New(kind Kind, message string) *Diagnostic {
	return &Diagnostic{Kind: kind, Severity: SeverityError, Message: message}
}

// Newf is New with fmt.Sprintf-style formatting.
func Newf(kind Kind, format string, args ...any) *Diagnostic {
	return New(kind, fmt.Sprintf(format, args...))
}

// At returns a copy of d with its Location set.
func (d *Diagnostic) At(loc Location) *Diagnostic {
	cp := *d
	cp.Location = loc
	return &cp
}

// WithSeverity returns a copy of d with its Severity set.
func (d *Diagnostic) WithSeverity(sev Severity) *Diagnostic {
	cp := *d
	cp.Severity = sev
	return &cp
}

// WrapError wraps an error with a message and cause chain, the way
// fmt.Errorf("%s: %w", message, cause) always has.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}

// List is an accumulated, ordered set of diagnostics, as produced by the
// analyzer over the course of a single compilation unit.
type List struct {
	items []*Diagnostic
}

// Add appends a diagnostic to the list.
func (l *List) Add(d *Diagnostic) {
	l.items = append(l.items, d)
}

// Items returns the accumulated diagnostics, in the order they were added.
func (l *List) Items() []*Diagnostic {
	return l.items
}

// HasErrors reports whether any accumulated diagnostic has SeverityError.
// A non-empty error list means the compilation front-end must fail.
func (l *List) HasErrors() bool {
	for _, d := range l.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of accumulated diagnostics.
func (l *List) Count() int {
	return len(l.items)
}

// Violation is a recordable failure in a safety-validator check, delivered
// to a single report sink. It is distinguished from Diagnostic in that it
// always carries a timestamp and an opaque context payload, per §4.8.
type Violation struct {
	Category  string
	Severity  Severity
	Timestamp time.Time
	File      string
	Line      int
	Function  string
	Message   string
	Context   any
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("%s:%d: %s: %s", v.File, v.Line, v.Category, v.Message)
}
