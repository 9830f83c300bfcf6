package grammar

import (
	"errors"
	"strings"

	"github.com/dekarrin/rosed"
)

// Sentinel errors for use with errors.Is. Each concrete error type below
// also implements Is so that wrapping/matching works whether the caller
// checks against the sentinel or inspects the concrete type directly.
var (
	ErrBadPattern       = errors.New("bad pattern")
	ErrBuildError       = errors.New("grammar build error")
	ErrUnresolvedSymbol = errors.New("unresolved symbol")
	ErrSyntaxError      = errors.New("syntax error")
)

// BadPatternError is returned by NewPattern when a pattern source does not
// compile as a regular expression.
type BadPatternError struct {
	Source string
	cause  error
}

func (e *BadPatternError) Error() string {
	return rosed.Edit("bad pattern \"" + e.Source + "\": " + e.cause.Error()).Wrap(78).String()
}

func (e *BadPatternError) Unwrap() error {
	return e.cause
}

func (e *BadPatternError) Is(target error) bool {
	return target == ErrBadPattern
}

// BuildError is returned while assembling a Tree when the rules being
// combined don't fit together: a branch case whose first node isn't a scan,
// a nested branch, or an otherwise case.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return rosed.Edit("grammar build error: " + e.Message).Wrap(78).String()
}

func (e *BuildError) Is(target error) bool {
	return target == ErrBuildError
}

// UnresolvedSymbolError is returned by Parser.Sink when one or more Goto
// calls were never bound to a matching Label.
type UnresolvedSymbolError struct {
	Names []string
}

func (e *UnresolvedSymbolError) Error() string {
	return rosed.Edit("unresolved goto target(s): " + textList(e.Names)).Wrap(78).String()
}

// textList gives a nice list of the names: "a", "a and b", or, for three or
// more, an oxford-comma join "a, b, and c".
func textList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}

	joined := make([]string, len(items))
	copy(joined, items)
	joined[len(joined)-1] = "and " + joined[len(joined)-1]
	return strings.Join(joined, ", ")
}

func (e *UnresolvedSymbolError) Is(target error) bool {
	return target == ErrUnresolvedSymbol
}

// SyntaxError is raised by a Branch that runs out of candidates: none of its
// cases matched, it is not waiting on more input, and it has no default
// successor to fall through to. It is also raised by the Reduce that
// Grammar.Error appends.
type SyntaxError struct {
	Message string
	Input   string
}

func (e *SyntaxError) Error() string {
	body := e.Message
	if e.Input != "" {
		snippet := e.Input
		if len(snippet) > 40 {
			snippet = snippet[:40] + "..."
		}
		body += ": \"" + snippet + "\""
	}
	return rosed.Edit(body).Wrap(78).String()
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntaxError
}
