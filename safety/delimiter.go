package safety

import "github.com/lumen-lang/lumenc/diagnostic"

// DelimiterResult is the outcome of CheckDelimiterBalance.
type DelimiterResult struct {
	Valid    bool
	Location diagnostic.Location
	// Residual{Brace,Paren,Bracket} report the non-zero counters observed
	// at EOF when Valid is false and no counter went negative mid-scan.
	ResidualBrace, ResidualParen, ResidualBracket int
}

// CheckDelimiterBalance scans source tracking line/column, counting {}, (),
// []. A counter going negative is reported immediately with the current
// line/column; a non-zero residual at EOF is reported with the triple of
// residuals. The scan does not skip strings or comments: text inside a
// string literal is treated identically to code, which can produce false
// positives — this is the documented, preserved behavior (spec §9 Open
// Questions), not a bug to fix here. A failure is reported as a Violation
// with category "delimiter_balance"; neither it nor the DelimiterResult
// carries a diagnostic.Kind such as InvalidSyntax.
func (v *Validator) CheckDelimiterBalance(source string) DelimiterResult {
	if !v.cfg.ParserValidation {
		return DelimiterResult{Valid: true}
	}

	var brace, paren, bracket int
	line, col := 1, 1

	for _, r := range source {
		switch r {
		case '\n':
			line++
			col = 1
			continue
		case '{':
			brace++
		case '}':
			brace--
		case '(':
			paren++
		case ')':
			paren--
		case '[':
			bracket++
		case ']':
			bracket--
		}

		if brace < 0 || paren < 0 || bracket < 0 {
			loc := diagnostic.Location{Line: line, Column: col}
			v.report("delimiter_balance", diagnostic.SeverityError, loc, "unbalanced delimiter: stray closing", nil)
			return DelimiterResult{Valid: false, Location: loc}
		}
		col++
	}

	if brace != 0 || paren != 0 || bracket != 0 {
		loc := diagnostic.Location{Line: line, Column: col}
		v.report("delimiter_balance", diagnostic.SeverityError, loc,
			"unbalanced delimiters at EOF", [3]int{brace, paren, bracket})
		return DelimiterResult{Valid: false, Location: loc, ResidualBrace: brace, ResidualParen: paren, ResidualBracket: bracket}
	}

	return DelimiterResult{Valid: true}
}
