package grammar

import (
	"regexp"

	"github.com/dekarrin/rosed"
)

// Pattern is a compiled regular expression, kept alongside the source text
// and flags it was built from so it can be rendered for diagnostics.
// Patterns are immutable after construction; re-specifying flags means
// building a new Pattern. This is what makes it safe for rule nodes to share
// a Pattern by reference.
type Pattern struct {
	source          string
	caseInsensitive bool
	re              *regexp.Regexp
}

// NewPattern compiles source as a regular expression. If caseInsensitive is
// true, the match is performed without regard to letter case. Returns a
// *BadPatternError if source does not compile.
func NewPattern(source string, caseInsensitive bool) (*Pattern, error) {
	toCompile := source
	if caseInsensitive {
		toCompile = "(?i)" + toCompile
	}

	re, err := regexp.Compile(toCompile)
	if err != nil {
		return nil, &BadPatternError{Source: source, cause: err}
	}

	return &Pattern{source: source, caseInsensitive: caseInsensitive, re: re}, nil
}

// Source returns the original pattern source text, without flags applied.
func (p *Pattern) Source() string {
	return p.source
}

// CaseInsensitive returns whether the Pattern was compiled to ignore letter
// case.
func (p *Pattern) CaseInsensitive() bool {
	return p.caseInsensitive
}

// Search returns the leftmost match of the Pattern within text, or ok=false
// if the Pattern does not match anywhere in text. The returned Match's
// capture set is valid only until the next call to Search on the same
// Match value.
func (p *Pattern) Search(text string) (m Match, ok bool) {
	loc := p.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Match{}, false
	}

	return newMatch(text, loc), true
}

// Render gives a human-readable representation of the Pattern, suitable for
// diagnostics such as SyntaxError messages and branch descriptions. Long
// sources are word-wrapped so a single runaway regex can't blow out a
// terminal line.
func (p *Pattern) Render() string {
	body := "/" + p.source + "/"
	if p.caseInsensitive {
		body += "i"
	}

	return rosed.Edit(body).Wrap(78).String()
}

func (p *Pattern) String() string {
	return p.Render()
}
