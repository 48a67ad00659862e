package safety

import (
	"github.com/lumen-lang/lumenc/diagnostic"
	"github.com/lumen-lang/lumenc/result"
)

// PatternVerdict is the outcome of CheckPatternCompleteness.
type PatternVerdict int

const (
	// Complete means every possible tag is covered.
	Complete PatternVerdict = iota
	// Incomplete means at least one tag has no covering arm.
	Incomplete
	// Redundant means a later arm duplicates an already-covered pattern.
	Redundant
	// Unreachable means an arm follows a Wildcard, so first-match
	// semantics mean it can never fire.
	Unreachable
)

// String returns a human-readable name for the PatternVerdict.
func (p PatternVerdict) String() string {
	switch p {
	case Complete:
		return "Complete"
	case Incomplete:
		return "Incomplete"
	case Redundant:
		return "Redundant"
	case Unreachable:
		return "Unreachable"
	default:
		return "Unknown"
	}
}

// PatternResult carries the verdict plus its supporting detail.
type PatternResult struct {
	Verdict PatternVerdict
	// Missing lists the constructor names not covered by any arm, set only
	// when Verdict == Incomplete.
	Missing []string
	// Index is the arm index of the duplicate/unreachable arm, set only
	// when Verdict == Redundant or Unreachable.
	Index int
}

// CheckPatternCompleteness applies the first-match rules over a Result
// scrutinee's arm vector:
//
//  1. A duplicate Ok, duplicate Err, or duplicate Wildcard is Redundant at
//     the later index.
//  2. The set {Ok, Err} must be covered, literally or via a Wildcard, or
//     the verdict is Incomplete.
//  3. Any arm following a Wildcard is Unreachable (first-match semantics),
//     checked before completeness/redundancy since it dominates both.
func (v *Validator) CheckPatternCompleteness(arms []result.Arm) PatternResult {
	if !v.cfg.PatternMatchChecks {
		return PatternResult{Verdict: Complete}
	}

	sawOk, sawErr, sawWildcard := false, false, false
	wildcardIndex := -1

	for i, arm := range arms {
		if wildcardIndex >= 0 && i > wildcardIndex {
			v.report("pattern_completeness", diagnostic.SeverityWarning, diagnostic.Location{},
				"arm is unreachable: follows a wildcard", i)
			return PatternResult{Verdict: Unreachable, Index: i}
		}

		switch arm.Pattern {
		case result.PatternOk:
			if sawOk {
				v.report("pattern_completeness", diagnostic.SeverityError, diagnostic.Location{},
					"redundant Ok arm", i)
				return PatternResult{Verdict: Redundant, Index: i}
			}
			sawOk = true
		case result.PatternErr:
			if sawErr {
				v.report("pattern_completeness", diagnostic.SeverityError, diagnostic.Location{},
					"redundant Err arm", i)
				return PatternResult{Verdict: Redundant, Index: i}
			}
			sawErr = true
		case result.PatternWildcard:
			if sawWildcard {
				v.report("pattern_completeness", diagnostic.SeverityError, diagnostic.Location{},
					"redundant wildcard arm", i)
				return PatternResult{Verdict: Redundant, Index: i}
			}
			sawWildcard = true
			wildcardIndex = i
		}
	}

	if sawWildcard || (sawOk && sawErr) {
		return PatternResult{Verdict: Complete}
	}

	var missing []string
	if !sawOk {
		missing = append(missing, "Ok")
	}
	if !sawErr {
		missing = append(missing, "Err")
	}
	v.report("pattern_completeness", diagnostic.SeverityError, diagnostic.Location{},
		"match is not exhaustive", missing)
	return PatternResult{Verdict: Incomplete, Missing: missing}
}
