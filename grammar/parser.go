package grammar

import (
	"github.com/google/uuid"
)

// Parser executes a rule graph produced by a Grammar as a streaming
// trampoline: Feed can be called repeatedly with successive chunks of
// input, and the Parser resumes exactly where it paused on the previous
// call. A Parser owns its graph exclusively once Sunk; it is not safe for
// concurrent use by multiple goroutines.
type Parser struct {
	id uuid.UUID

	root    *rule
	current *rule
	match   Match

	// pending holds input left over from a previous Feed call whose last
	// step suspended with need_more: a ScanUntil miss, an empty/undecided
	// Branch, or a Stop. It is prepended to the next chunk so a match that
	// straddles a chunk boundary completes exactly as if it had been fed
	// in one piece.
	pending string
}

// NewParser returns an empty Parser with no grammar sunk into it yet.
func NewParser() *Parser {
	return &Parser{id: uuid.New()}
}

// ID returns the Parser's identity, for correlating log lines across a
// program that runs several Parsers concurrently.
func (p *Parser) ID() uuid.UUID {
	return p.id
}

// Sink takes ownership of g's rule graph. Returns an *UnresolvedSymbolError
// if any Goto in g was never bound to a matching Label. g must not be used
// after Sink returns successfully.
func (p *Parser) Sink(g *Grammar) error {
	if g.err != nil {
		return g.err
	}
	if !g.t.fullyResolved() {
		return &UnresolvedSymbolError{Names: g.t.unresolvedNames()}
	}

	p.root = g.t.release()
	g.err = errSpent
	p.Reset()
	return nil
}

// Reset rewinds the Parser to the start of its grammar, for parsing the
// next independent input with the same rule graph.
func (p *Parser) Reset() {
	p.current = p.root
	p.match = Match{}
	p.pending = ""
}

// IsLeaf reports whether the Parser has run off the end of its grammar and
// cannot make progress until Reset.
func (p *Parser) IsLeaf() bool {
	return p.current == nil
}

// Feed drives the trampoline over chunk until either the grammar is
// exhausted (IsLeaf becomes true) or a rule reports it needs more input
// than chunk has left to give, at which point Feed returns and the next
// call continues from there. A non-nil error is fatal: it came from a
// Reduce callback or an exhausted Branch, and current_rule has not
// advanced past the rule that raised it.
func (p *Parser) Feed(chunk string) error {
	input := p.pending + chunk
	p.pending = ""
	needMore := false

	for p.current != nil && !needMore {
		next, nm, err := p.current.step(&p.match, &input)
		if err != nil {
			return err
		}
		p.current = next
		needMore = nm
	}

	if needMore {
		p.pending = input
	}

	return nil
}
