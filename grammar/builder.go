package grammar

// Grammar is a fluent, move-only builder for a rule graph. Every mutating
// method returns the same *Grammar so calls chain; once a Grammar has been
// absorbed as a branch case, appended into another Grammar, or sunk into a
// Parser, it is spent and must not be reused.
//
// Build errors (an unparseable pattern, a malformed branch case) are sticky:
// the first one short-circuits every subsequent call and is surfaced when
// the Grammar is sunk into a Parser.
type Grammar struct {
	t   *tree
	err error
}

// New starts an empty Grammar.
func New() *Grammar {
	return &Grammar{t: newTree()}
}

// OtherwiseCase starts a Grammar whose first rule is an otherwise
// placeholder, for use only as an argument to Branch.
func OtherwiseCase() *Grammar {
	g := New()
	g.t.otherwise()
	return g
}

func (g *Grammar) fail(err error) *Grammar {
	if g.err == nil {
		g.err = err
	}
	return g
}

// Re appends a ScanUntil matching source case-sensitively.
func (g *Grammar) Re(source string) *Grammar {
	return g.reCommon(source, false)
}

// ReI appends a ScanUntil matching source case-insensitively.
func (g *Grammar) ReI(source string) *Grammar {
	return g.reCommon(source, true)
}

func (g *Grammar) reCommon(source string, caseInsensitive bool) *Grammar {
	if g.err != nil {
		return g
	}

	p, err := NewPattern(source, caseInsensitive)
	if err != nil {
		return g.fail(err)
	}

	g.t.scan(p)
	return g
}

// OnMatch appends a Reduce that invokes cb with the whole Match.
func (g *Grammar) OnMatch(cb func(*Match) error) *Grammar {
	if g.err != nil {
		return g
	}
	g.t.reduce(cb)
	return g
}

// OnString appends a Reduce that invokes cb with the text of capture group
// index from the most recent match.
func (g *Grammar) OnString(cb func(string) error, index int) *Grammar {
	if g.err != nil {
		return g
	}
	g.t.reduce(func(m *Match) error {
		return cb(m.Capture(index))
	})
	return g
}

// Thunk appends a Reduce that invokes cb with no arguments.
func (g *Grammar) Thunk(cb func() error) *Grammar {
	if g.err != nil {
		return g
	}
	g.t.reduce(func(*Match) error {
		return cb()
	})
	return g
}

// Ignore appends a Reduce that does nothing; it exists purely to advance
// past a scan without wiring a reducer.
func (g *Grammar) Ignore() *Grammar {
	if g.err != nil {
		return g
	}
	g.t.reduce(nil)
	return g
}

// PutBack appends a PutBack that re-queues the most recent match's full
// text at the front of the remaining input.
func (g *Grammar) PutBack() *Grammar {
	if g.err != nil {
		return g
	}
	g.t.putBack()
	return g
}

// PutBackLiteral appends a PutBack that queues literal text at the front of
// the remaining input, independent of any match.
func (g *Grammar) PutBackLiteral(literal string) *Grammar {
	if g.err != nil {
		return g
	}
	g.t.putBackLiteral(literal)
	return g
}

// Label appends a named label, resolving any gotos already pending on name.
func (g *Grammar) Label(name string) *Grammar {
	if g.err != nil {
		return g
	}
	g.t.label(name)
	return g
}

// Goto appends a jump to name, resolved immediately if the label already
// exists, or left pending until it's added (by this Grammar or whatever
// Grammar it's later appended onto or sunk alongside).
func (g *Grammar) Goto(name string) *Grammar {
	if g.err != nil {
		return g
	}
	g.t.goTo(name)
	return g
}

// Branch opens a new Branch node, absorbs each case's first rule per the
// composition rules (see tree.absorbCase), and appends a post-branch label
// that every case converges to. Each case Grammar is consumed.
func (g *Grammar) Branch(cases ...*Grammar) *Grammar {
	if g.err != nil {
		return g
	}

	g.t.pushBranch()
	for _, c := range cases {
		if c == nil {
			continue
		}
		if c.err != nil {
			return g.fail(c.err)
		}
		if err := g.t.absorbCase(c.t); err != nil {
			return g.fail(err)
		}
		c.err = errSpent
	}
	return g
}

// If appends an If that branches to consequent's rules when pred returns
// true, falling through otherwise. consequent is consumed.
func (g *Grammar) If(pred func() bool, consequent *Grammar) *Grammar {
	if g.err != nil {
		return g
	}
	if consequent == nil || consequent.err != nil {
		if consequent != nil {
			return g.fail(consequent.err)
		}
		return g.fail(&BuildError{Message: "If consequent is nil"})
	}

	target := consequent.t.chain.front()
	if target == nil {
		return g.fail(&BuildError{Message: "If consequent is empty"})
	}

	// The consequent's rules are reachable only through the If's own
	// consequent pointer, never spliced into g's main sequence: tables
	// merge so labels resolve across the boundary, but the chains stay
	// unlinked.
	g.t.merge(consequent.t)
	g.t.ifRule(pred, target)
	consequent.err = errSpent
	return g
}

// Stop appends a Stop.
func (g *Grammar) Stop() *Grammar {
	if g.err != nil {
		return g
	}
	g.t.stop()
	return g
}

// Error appends a Reduce that always fails with a SyntaxError carrying msg
// and the full text of the current match.
func (g *Grammar) Error(msg string) *Grammar {
	if g.err != nil {
		return g
	}
	g.t.reduce(func(m *Match) error {
		return &SyntaxError{Message: msg, Input: m.Full()}
	})
	return g
}

// Append concatenates other onto the end of g, merging symbol and pending
// tables in both directions. other is consumed.
func (g *Grammar) Append(other *Grammar) *Grammar {
	if g.err != nil {
		return g
	}
	if other == nil {
		return g
	}
	if other.err != nil {
		return g.fail(other.err)
	}

	g.t.append(other.t)
	other.err = errSpent
	return g
}

// errSpent marks a Grammar that has been consumed by Branch, If, or Append.
// Using it further surfaces as a build error rather than silently
// corrupting the tree it no longer owns.
var errSpent = &BuildError{Message: "grammar was already consumed"}
